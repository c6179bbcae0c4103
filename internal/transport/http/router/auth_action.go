package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/core/auth"
	"lawdesk/internal/domain"
	"lawdesk/internal/transport/http/ez"
	mdw "lawdesk/internal/transport/http/middleware"
)

// /auth/login（公共）、/auth/logout、/me（鉴权）
func mountAuthActions(api *gin.RouterGroup, mgr *auth.Manager, jwter *auth.JWTer) {
	e := ez.New(api)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string         `json:"token"`
		User  domain.Session `json:"user"`
	}
	ez.Register(e, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost, Path: "/auth/login", Binder: ez.BindJSON, Open: true,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			sess, err := mgr.Login(c.Request.Context(), in.Email, in.Password)
			if errors.Is(err, auth.ErrInvalidCredentials) {
				// 统一文案，不区分邮箱不存在 / 密码错误
				return loginOut{}, ez.Unauthorized(err.Error())
			}
			if err != nil {
				return loginOut{}, ez.Internal("login failed", err)
			}
			tok, err := jwter.Issue(sess.UserID, sess.Role)
			if err != nil || tok == "" {
				return loginOut{}, ez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, User: sess}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost, Path: "/auth/logout", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			mgr.Logout()
			return gin.H{"ok": 1}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, domain.Session]{
		Method: http.MethodGet, Path: "/me", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Session, error) {
			snap := mdw.SnapshotFrom(c)
			if snap.Session == nil {
				return domain.Session{}, ez.Unauthorized("unauthorized")
			}
			return *snap.Session, nil
		},
	})
}
