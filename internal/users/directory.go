// Package users 维护后台账号列表（UserManagement 的数据层）。
// 整个列表作为一条 JSON 记录持久化在本地 kv 的 appUsers 键下。
package users

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"lawdesk/internal/core/localstore"
	"lawdesk/internal/domain"
	"lawdesk/pkg/utils"
)

const storageKey = "appUsers"

var ErrEmailTaken = errors.New("email sudah terdaftar")

type Directory struct {
	mu   sync.Mutex
	kv   *localstore.Store
	log  *zap.Logger
	list []domain.User
}

// NewDirectory 读出持久化的列表；键不存在或数据坏掉则落回种子账号
func NewDirectory(kv *localstore.Store, l *zap.Logger) *Directory {
	d := &Directory{kv: kv, log: l}
	if !kv.Get(storageKey, &d.list) || len(d.list) == 0 {
		d.list = defaultUsers()
		d.persist()
	}
	return d
}

// 种子管理员，与初始演示数据一致
func defaultUsers() []domain.User {
	return []domain.User{{
		ID:           1,
		Email:        "admin@alsoandpartners.com",
		Name:         "Super Admin",
		Role:         domain.RoleAdmin,
		Title:        "Administrator",
		Status:       "active",
		CreatedAt:    time.Now().Format("2006-01-02"),
		PasswordHash: utils.HashPassword("admin123"),
	}}
}

func (d *Directory) persist() {
	if err := d.kv.Set(storageKey, d.list); err != nil {
		d.log.Warn("persist users failed", zap.Error(err))
	}
}

func (d *Directory) List() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.User, len(d.list))
	for i, u := range d.list {
		out[i] = u.Sanitized()
	}
	return out
}

// FindByEmail 精确匹配（区分大小写），返回含哈希的完整记录，供登录校验
func (d *Directory) FindByEmail(email string) (domain.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.list {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (d *Directory) FindByID(id int) (domain.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.list {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// Create 分配递增 id，密码即刻散列后丢弃明文
func (d *Directory) Create(u domain.User, password string) (domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ex := range d.list {
		if ex.Email == u.Email {
			return domain.User{}, ErrEmailTaken
		}
	}
	maxID := 0
	for _, ex := range d.list {
		if ex.ID > maxID {
			maxID = ex.ID
		}
	}
	u.ID = maxID + 1
	u.Status = "active"
	u.CreatedAt = time.Now().Format("2006-01-02")
	u.PasswordHash = utils.HashPassword(password)
	d.list = append(d.list, u)
	d.persist()
	return u.Sanitized(), nil
}

// Update 字段级合并；id 不存在时 no-op
func (d *Directory) Update(id int, p domain.UserPatch) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.list {
		if d.list[i].ID != id {
			continue
		}
		u := &d.list[i]
		if p.Email != nil {
			u.Email = *p.Email
		}
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Role != nil {
			u.Role = *p.Role
		}
		if p.Title != nil {
			u.Title = *p.Title
		}
		if p.Status != nil {
			u.Status = *p.Status
		}
		if p.Password != nil && strings.TrimSpace(*p.Password) != "" {
			u.PasswordHash = utils.HashPassword(*p.Password)
		}
		d.persist()
		return
	}
}

// Delete 移除账号；id 不存在时 no-op，管理员账号不可删
func (d *Directory) Delete(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.list {
		if d.list[i].ID != id {
			continue
		}
		if d.list[i].Role == domain.RoleAdmin {
			return
		}
		d.list = append(d.list[:i], d.list[i+1:]...)
		d.persist()
		return
	}
}
