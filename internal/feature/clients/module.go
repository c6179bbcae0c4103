// 委托人只读接口：数据来自种子，核心不修改
package clients

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/domain"
	"lawdesk/internal/store"
	"lawdesk/internal/transport/http/ez"
)

var staff = []domain.Role{domain.RoleAdmin, domain.RoleLawyer, domain.RoleParalegal}

type Module struct{ st *store.Store }

func New(st *store.Store) *Module { return &Module{st: st} }

func (m *Module) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api)

	ez.Register(e, ez.Action[struct{}, []domain.Client]{
		Method: http.MethodGet, Path: "/clients", Binder: ez.BindNone, Roles: staff,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Client, error) {
			return m.st.Clients(), nil
		},
	})

	ez.Register(e, ez.Action[struct{}, domain.Client]{
		Method: http.MethodGet, Path: "/clients/:id", Binder: ez.BindNone, Roles: staff,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Client, error) {
			id, err := strconv.Atoi(c.Param("id"))
			if err != nil {
				return domain.Client{}, ez.BadRequest("invalid id")
			}
			cl, ok := m.st.ClientByID(id)
			if !ok {
				return domain.Client{}, ez.NotFound("client not found")
			}
			return cl, nil
		},
	})
}
