package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/core/auth"
	"lawdesk/internal/domain"
	"lawdesk/internal/users"
)

const keySnapshot = "authSnapshot"

// AuthJWT 解析 Bearer token 并把守卫用的会话快照放进上下文。
// 这里不直接拒绝请求——放行与否由每条路由的守卫分支决定（ez.Register）。
func AuthJWT(j *auth.JWTer, dir *users.Directory, mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := auth.Snapshot{State: mgr.State()}

		ah := c.GetHeader("Authorization")
		if strings.HasPrefix(ah, "Bearer ") {
			if claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer ")); err == nil {
				// 账号可能已被管理员删除，查一次目录
				if u, ok := dir.FindByID(claims.UID); ok {
					sess := domain.Session{
						UserID: u.ID,
						Email:  u.Email,
						Name:   u.Name,
						Role:   u.Role,
						Title:  u.Title,
					}
					snap.Session = &sess
					if snap.State != auth.StateInitializing {
						snap.State = auth.StateAuthenticated
					}
					c.Set("userId", u.ID)
					c.Set("role", string(u.Role))
				}
			}
		}
		if snap.Session == nil && snap.State == auth.StateAuthenticated {
			snap.State = auth.StateUnauthenticated
		}

		SetSnapshot(c, snap)
		c.Next()
	}
}

// SetSnapshot 写入守卫快照；正常链路只有 AuthJWT 调它
func SetSnapshot(c *gin.Context, snap auth.Snapshot) { c.Set(keySnapshot, snap) }

// SnapshotFrom 取出 AuthJWT 写入的快照；没有中间件时按未登录处理
func SnapshotFrom(c *gin.Context) auth.Snapshot {
	if v, ok := c.Get(keySnapshot); ok {
		if snap, ok := v.(auth.Snapshot); ok {
			return snap
		}
	}
	return auth.Snapshot{State: auth.StateUnauthenticated}
}
