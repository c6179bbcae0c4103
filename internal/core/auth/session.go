package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"lawdesk/internal/core/localstore"
	"lawdesk/internal/domain"
	"lawdesk/internal/users"
	"lawdesk/pkg/utils"
)

// 持久化的会话记录键（设备本地，单条）
const sessionKey = "alsopartners_user"

// 登录失败统一一条文案：不区分“账号不存在”和“密码错误”，防止账号枚举。
// 文案保持原样，是对用户可见的。
var ErrInvalidCredentials = errors.New("Email atau password salah")

type State int

const (
	StateInitializing State = iota // 启动后、会话恢复完成前
	StateUnauthenticated
	StateAuthenticated
)

// Manager 会话管理：登录 / 登出 / 权限判断 / 持久化恢复。
// 状态机：Initializing → (Rehydrate) → Authenticated | Unauthenticated，
// 之后 Login/Logout 在后两态之间切换。
type Manager struct {
	dir   *users.Directory
	kv    *localstore.Store
	log   *zap.Logger
	delay time.Duration // 模拟网络延迟（可配 0）

	sf singleflight.Group

	mu      sync.RWMutex
	state   State
	session *domain.Session
}

func NewManager(dir *users.Directory, kv *localstore.Store, l *zap.Logger, delay time.Duration) *Manager {
	return &Manager{dir: dir, kv: kv, log: l, delay: delay, state: StateInitializing}
}

// Rehydrate 进程启动时调用一次，恢复持久化的会话。
// 记录坏掉按“无会话”处理（localstore 已兜住解析错误），绝不中断启动。
func (m *Manager) Rehydrate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sess domain.Session
	if m.kv.Get(sessionKey, &sess) && sess.UserID != 0 {
		m.session = &sess
		m.state = StateAuthenticated
		m.log.Info("session rehydrated", zap.String("email", sess.Email))
		return
	}
	m.state = StateUnauthenticated
}

// Login 校验凭证并建立会话。延迟和凭证校验每次调用各自执行——
// 校验结果绝不跨调用共享，否则在途窗口里错的密码能蹭到对的结果。
// singleflight 只合并校验通过之后的“建立/落盘”一步，重复提交
// 不会写出两份竞争的会话记录。
func (m *Manager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return domain.Session{}, ctx.Err()
		}
	}

	u, ok := m.dir.FindByEmail(email)
	if !ok || !utils.CheckPassword(password, u.PasswordHash) {
		return domain.Session{}, ErrInvalidCredentials
	}

	// 到这里凭证已过；闭包内不再碰 ctx，取消只影响取消者自己
	v, _, _ := m.sf.Do(email, func() (any, error) {
		sess := domain.Session{
			UserID: u.ID,
			Email:  u.Email,
			Name:   u.Name,
			Role:   u.Role,
			Title:  u.Title,
		}

		m.mu.Lock()
		m.session = &sess
		m.state = StateAuthenticated
		m.mu.Unlock()

		if err := m.kv.Set(sessionKey, sess); err != nil {
			m.log.Warn("persist session failed", zap.Error(err))
		}
		m.log.Info("login ok", zap.String("email", u.Email), zap.String("role", string(u.Role)))
		return sess, nil
	})
	return v.(domain.Session), nil
}

// Logout 清内存会话并删除持久化记录
func (m *Manager) Logout() {
	m.mu.Lock()
	m.session = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.kv.Delete(sessionKey); err != nil {
		m.log.Warn("delete session record failed", zap.Error(err))
	}
}

func (m *Manager) Session() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return domain.Session{}, false
	}
	return *m.session, true
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// HasPermission 当前角色是否在要求之列；admin 全局放行
func (m *Manager) HasPermission(required ...domain.Role) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return false
	}
	return roleAllowed(m.session.Role, required)
}

// Snapshot 供路由守卫消费的当前状态视图
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Session: m.session}
}
