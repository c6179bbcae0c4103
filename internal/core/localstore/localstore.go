package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store 本地键值存储：单个 sqlite 文件，value 一律 JSON。
// 读方必须容忍 key 不存在（首次运行）和坏数据（回退默认值），见 Get。
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func Open(path string, l *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("localstore: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	// modernc.org/sqlite 的驱动名是 "sqlite"
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, log: l}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get 读取 key 并解码到 out。key 不存在返回 false；
// JSON 坏掉也返回 false（记日志，调用方回退默认值，绝不崩）。
func (s *Store) Get(key string, out any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.log.Warn("localstore read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("localstore corrupt record, falling back to defaults",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.PutRaw(key, raw)
}

// PutRaw 直接写入已编码的 JSON 串
func (s *Store) PutRaw(key string, raw []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, string(raw),
	)
	return err
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE k = ?`, key)
	return err
}
