package ez

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawdesk/internal/core/auth"
	"lawdesk/internal/domain"
	mdw "lawdesk/internal/transport/http/middleware"
	resp "lawdesk/internal/transport/http/response"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// 固定快照的引擎：绕过 JWT 解析，直接喂守卫要看的状态
func guardedEngine(t *testing.T, snap auth.Snapshot, roles []domain.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) { mdw.SetSnapshot(c, snap); c.Next() })

	e := New(r.Group("/"))
	Register(e, Action[struct{}, gin.H]{
		Method: http.MethodGet, Path: "/ping", Binder: BindNone, Roles: roles,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return gin.H{"pong": 1}, nil
		},
	})
	return r
}

func get(t *testing.T, r *gin.Engine, path string) envelope {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// 会话恢复中：给 503 可重试码，不是 500
func TestGuard_InitializingReturnsRetryableCode(t *testing.T) {
	r := guardedEngine(t, auth.Snapshot{State: auth.StateInitializing}, nil)

	env := get(t, r, "/ping")
	assert.Equal(t, resp.CodeUnavailable, env.Code)
	assert.Equal(t, "session initializing", env.Msg)
}

func TestGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	r := guardedEngine(t, auth.Snapshot{State: auth.StateUnauthenticated}, nil)

	env := get(t, r, "/ping")
	assert.Equal(t, resp.CodeUnauthorized, env.Code)

	var data struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "/login", data.Redirect)
}

func TestGuard_WrongRoleRedirectsHome(t *testing.T) {
	sess := domain.Session{UserID: 2, Role: domain.RoleClient}
	r := guardedEngine(t,
		auth.Snapshot{State: auth.StateAuthenticated, Session: &sess},
		[]domain.Role{domain.RoleLawyer})

	env := get(t, r, "/ping")
	assert.Equal(t, resp.CodeForbidden, env.Code)

	var data struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "/dashboard", data.Redirect)
}

func TestGuard_AllowedRoleReachesHandler(t *testing.T) {
	sess := domain.Session{UserID: 2, Role: domain.RoleLawyer}
	r := guardedEngine(t,
		auth.Snapshot{State: auth.StateAuthenticated, Session: &sess},
		[]domain.Role{domain.RoleLawyer})

	env := get(t, r, "/ping")
	assert.Equal(t, resp.CodeOK, env.Code)
}
