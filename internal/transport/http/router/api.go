package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lawdesk/internal/core/auth"
	mdw "lawdesk/internal/transport/http/middleware"
	"lawdesk/internal/users"
)

// Deps 显式依赖注入，不走全局单例
type Deps struct {
	Users    *users.Directory
	Sessions *auth.Manager
	JWT      *auth.JWTer
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.AuthJWT(d.JWT, d.Users, d.Sessions),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前缀
	api := r.Group("/api/v1")

	// 登录 / 登出 / me
	mountAuthActions(api, d.Sessions, d.JWT)

	// 各功能模块（main 里 Register 过的）
	MountAllAPI(api)

	return r
}
