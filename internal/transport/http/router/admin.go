package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lawdesk/internal/core/server"
	mdw "lawdesk/internal/transport/http/middleware"
)

// NewAdminEngine 管理端：ginzap + cors 底座，再叠加限流和会话快照
func NewAdminEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(50, 100),
		mdw.MaxBodyBytes(8<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AuthJWT(d.JWT, d.Users, d.Sessions),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	// 管理端 v1；角色限制由每条 action 的守卫分支执行（统一 admin）
	admin := r.Group("/admin/v1")
	MountAllAdmin(admin)

	return r
}
