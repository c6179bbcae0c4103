package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lawdesk/internal/core/localstore"
	"lawdesk/internal/domain"
	"lawdesk/internal/users"
)

func newTestManager(t *testing.T, delay time.Duration) (*Manager, *localstore.Store) {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "state.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	dir := users.NewDirectory(kv, zap.NewNop())
	m := NewManager(dir, kv, zap.NewNop(), delay)
	m.Rehydrate()
	return m, kv
}

func TestLogin_SeededAdminSucceeds(t *testing.T) {
	m, _ := newTestManager(t, 0)

	sess, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
	assert.Equal(t, "Super Admin", sess.Name)
	assert.Equal(t, StateAuthenticated, m.State())

	got, ok := m.Session()
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestLogin_UniformErrorForAnyBadCredentials(t *testing.T) {
	m, _ := newTestManager(t, 0)

	// 密码错误和邮箱不存在给同一条文案，防账号枚举
	_, errWrongPass := m.Login(context.Background(), "admin@alsoandpartners.com", "salah")
	_, errNoUser := m.Login(context.Background(), "tidakada@contoh.id", "admin123")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
	assert.NotEmpty(t, errWrongPass.Error())
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestLogin_EmailMatchIsCaseSensitive(t *testing.T) {
	m, _ := newTestManager(t, 0)

	_, err := m.Login(context.Background(), "Admin@alsoandpartners.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SessionExcludesCredentialMaterial(t *testing.T) {
	m, kv := newTestManager(t, 0)

	_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
	require.NoError(t, err)

	// 落盘的会话记录不含任何密码字段
	var raw map[string]any
	require.True(t, kv.Get("alsopartners_user", &raw))
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "passwordHash")
}

func TestRehydrate_RestoresPersistedSession(t *testing.T) {
	m, kv := newTestManager(t, 0)
	_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
	require.NoError(t, err)

	// 同一份 kv 上重建 manager，模拟进程重启
	dir := users.NewDirectory(kv, zap.NewNop())
	m2 := NewManager(dir, kv, zap.NewNop(), 0)
	assert.Equal(t, StateInitializing, m2.State())

	m2.Rehydrate()
	assert.Equal(t, StateAuthenticated, m2.State())
	sess, ok := m2.Session()
	require.True(t, ok)
	assert.Equal(t, "admin@alsoandpartners.com", sess.Email)
}

func TestRehydrate_CorruptRecordFallsOpenToLoggedOut(t *testing.T) {
	m, kv := newTestManager(t, 0)
	_ = m

	require.NoError(t, kv.PutRaw(sessionKey, []byte("{definitely not json")))

	dir := users.NewDirectory(kv, zap.NewNop())
	m2 := NewManager(dir, kv, zap.NewNop(), 0)
	m2.Rehydrate()

	assert.Equal(t, StateUnauthenticated, m2.State())
	_, ok := m2.Session()
	assert.False(t, ok)
}

func TestLogout_ClearsMemoryAndPersistedRecord(t *testing.T) {
	m, kv := newTestManager(t, 0)
	_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
	require.NoError(t, err)

	m.Logout()

	assert.Equal(t, StateUnauthenticated, m.State())
	_, ok := m.Session()
	assert.False(t, ok)

	var sess domain.Session
	assert.False(t, kv.Get(sessionKey, &sess))
}

func TestHasPermission_AdminOverride(t *testing.T) {
	m, _ := newTestManager(t, 0)
	_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
	require.NoError(t, err)

	assert.True(t, m.HasPermission(domain.RoleLawyer))
	assert.True(t, m.HasPermission(domain.RoleClient))
	assert.True(t, m.HasPermission(domain.RoleLawyer, domain.RoleParalegal))
}

func TestHasPermission_NonAdminRoles(t *testing.T) {
	_, kv := newTestManager(t, 0)

	dir := users.NewDirectory(kv, zap.NewNop())
	_, err := dir.Create(domain.User{
		Name: "Sarah Wijaya", Email: "sarah@alsoandpartners.com", Role: domain.RoleLawyer,
	}, "rahasia1")
	require.NoError(t, err)

	m2 := NewManager(dir, kv, zap.NewNop(), 0)
	m2.Rehydrate()
	_, err = m2.Login(context.Background(), "sarah@alsoandpartners.com", "rahasia1")
	require.NoError(t, err)

	assert.True(t, m2.HasPermission(domain.RoleLawyer))
	assert.False(t, m2.HasPermission(domain.RoleClient))
	assert.False(t, m2.HasPermission(domain.RoleParalegal))
}

func TestHasPermission_FalseWithoutSession(t *testing.T) {
	m, _ := newTestManager(t, 0)
	assert.False(t, m.HasPermission(domain.RoleAdmin))
}

func TestLogin_DelayHonorsContextCancellation(t *testing.T) {
	m, _ := newTestManager(t, 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Login(ctx, "admin@alsoandpartners.com", "admin123")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateUnauthenticated, m.State())
}

// 延迟窗口内混入错密码：各自校验，在途的成功登录蹭不到
func TestLogin_ConcurrentWrongPasswordStillRejected(t *testing.T) {
	m, _ := newTestManager(t, 80*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
		done <- err
	}()

	// 好登录还在延迟窗口里时提交错密码
	time.Sleep(10 * time.Millisecond)
	_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, <-done)
	assert.Equal(t, StateAuthenticated, m.State())
}

// 一个调用方取消不拖累另一个同账号的在途调用
func TestLogin_CancelledCallerDoesNotFailOthers(t *testing.T) {
	m, _ := newTestManager(t, 80*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Login(ctx, "admin@alsoandpartners.com", "admin123")
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	_, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
	require.NoError(t, err)
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, StateAuthenticated, m.State())
}

// 双击提交：两次调用各自校验后拿到同一份会话，建立/落盘被合并，
// 不会出现两份完成结果竞争写持久化记录。
func TestLogin_DoubleSubmitCoalesces(t *testing.T) {
	m, _ := newTestManager(t, 100*time.Millisecond)

	type result struct {
		sess domain.Session
		err  error
	}
	ch := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			s, err := m.Login(context.Background(), "admin@alsoandpartners.com", "admin123")
			ch <- result{s, err}
		}()
	}

	a := <-ch
	b := <-ch
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.Equal(t, a.sess, b.sess)
}
