package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lawdesk/internal/core/auth"
	"lawdesk/internal/core/localstore"
	"lawdesk/internal/domain"
	"lawdesk/internal/feature/cases"
	"lawdesk/internal/feature/invoices"
	"lawdesk/internal/seed"
	"lawdesk/internal/store"
	"lawdesk/internal/users"
)

// 注册表是包级的，模块（和它们背后的 store）整个测试包只注册一次
var (
	registerOnce sync.Once
	sharedStore  *store.Store
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := localstore.Open(filepath.Join(t.TempDir(), "state.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	dir := users.NewDirectory(kv, zap.NewNop())
	mgr := auth.NewManager(dir, kv, zap.NewNop(), 0)
	mgr.Rehydrate()

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "lawdesk", TTL: time.Hour}

	registerOnce.Do(func() {
		sharedStore = store.New(seed.Cases(), seed.Invoices(), seed.Clients())
		Register(cases.New(sharedStore))
		Register(invoices.New(sharedStore))
	})

	return NewAPIEngine(zap.NewNop(), Deps{Users: dir, Sessions: mgr, JWT: jwter})
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@alsoandpartners.com", "password": "admin123",
	})
	require.Equal(t, 0, env.Code)

	var out struct {
		Token string         `json:"token"`
		User  domain.Session `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.Token)
	require.Equal(t, domain.RoleAdmin, out.User.Role)
	return out.Token
}

func TestLoginEndpoint_BadCredentialsUniformMessage(t *testing.T) {
	r := testEngine(t)

	env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@alsoandpartners.com", "password": "salah",
	})
	assert.Equal(t, 401, env.Code)
	assert.Equal(t, "Email atau password salah", env.Msg)

	env2 := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "tidakada@contoh.id", "password": "admin123",
	})
	assert.Equal(t, env.Msg, env2.Msg)
}

func TestCasesEndpoint_RequiresLogin(t *testing.T) {
	r := testEngine(t)

	env := doJSON(t, r, http.MethodGet, "/api/v1/cases", "", nil)
	assert.Equal(t, 401, env.Code)

	var data struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "/login", data.Redirect)
}

func TestCasesEndpoint_ListAndCreate(t *testing.T) {
	r := testEngine(t)
	token := loginAdmin(t, r)

	env := doJSON(t, r, http.MethodGet, "/api/v1/cases", token, nil)
	require.Equal(t, 0, env.Code)

	var list []domain.Case
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.GreaterOrEqual(t, len(list), 5) // 种子 5 条

	env = doJSON(t, r, http.MethodPost, "/api/v1/cases", token, gin.H{
		"title": "PT. Contoh - Gugatan", "type": "Perdata",
		"status": "pending", "priority": "high", "clientId": 1,
	})
	require.Equal(t, 0, env.Code)

	var created domain.Case
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Progress)

	// 新建的在最前面
	env = doJSON(t, r, http.MethodGet, "/api/v1/cases", token, nil)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.NotEmpty(t, list)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestInvoiceEndpoint_CreateDerivesDraftAndAmount(t *testing.T) {
	r := testEngine(t)
	token := loginAdmin(t, r)

	env := doJSON(t, r, http.MethodPost, "/api/v1/invoices", token, gin.H{
		"caseId": "CASE-2024-001", "client": "PT. Abadi Jaya", "clientId": 1,
		"items": []gin.H{{"description": "Konsultasi", "hours": 4, "rate": 5000000}},
	})
	require.Equal(t, 0, env.Code)

	var inv domain.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, float64(20000000), inv.Amount)
}

func TestMeEndpoint_ReflectsTokenIdentity(t *testing.T) {
	r := testEngine(t)
	token := loginAdmin(t, r)

	env := doJSON(t, r, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, 0, env.Code)

	var sess domain.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, "Super Admin", sess.Name)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
}
