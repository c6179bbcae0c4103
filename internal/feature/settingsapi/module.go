// 设置读取 + 主题切换走用户端；律所信息/logo 的写入挂在管理端
package settingsapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/domain"
	"lawdesk/internal/settings"
	"lawdesk/internal/transport/http/ez"
)

type Module struct{ svc *settings.Service }

func New(svc *settings.Service) *Module { return &Module{svc: svc} }

type settingsOut struct {
	Firm  domain.FirmSettings `json:"firm"`
	Logo  string              `json:"logo,omitempty"`
	Theme domain.Theme        `json:"theme"`
}

func (m *Module) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api)

	// 任意已登录角色
	ez.Register(e, ez.Action[struct{}, settingsOut]{
		Method: http.MethodGet, Path: "/settings", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (settingsOut, error) {
			return settingsOut{Firm: m.svc.Firm(), Logo: m.svc.Logo(), Theme: m.svc.Theme()}, nil
		},
	})

	type themeIn struct {
		Theme domain.Theme `json:"theme" binding:"required,oneof=light dark"`
	}
	ez.Register(e, ez.Action[themeIn, gin.H]{
		Method: http.MethodPut, Path: "/settings/theme", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *themeIn) (gin.H, error) {
			m.svc.SetTheme(in.Theme)
			return gin.H{"theme": in.Theme}, nil
		},
	})
}

func (m *Module) MountAdmin(admin *gin.RouterGroup) {
	e := ez.New(admin)
	adminOnly := []domain.Role{domain.RoleAdmin}

	ez.Register(e, ez.Action[domain.FirmPatch, domain.FirmSettings]{
		Method: http.MethodPut, Path: "/firm", Binder: ez.BindJSON, Roles: adminOnly,
		Handler: func(c *gin.Context, in *domain.FirmPatch) (domain.FirmSettings, error) {
			return m.svc.UpdateFirm(*in), nil
		},
	})

	type logoIn struct {
		Logo string `json:"logo"` // 空串 = 移除
	}
	ez.Register(e, ez.Action[logoIn, gin.H]{
		Method: http.MethodPut, Path: "/firm/logo", Binder: ez.BindJSON, Roles: adminOnly,
		Handler: func(c *gin.Context, in *logoIn) (gin.H, error) {
			m.svc.SetLogo(in.Logo)
			return gin.H{"logo": in.Logo}, nil
		},
	})
}
