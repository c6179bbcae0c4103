// 案件接口。访问角色沿用前台路由表：
// 列表/详情开放给内勤三个角色，增删改只有 admin/lawyer。
package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/domain"
	"lawdesk/internal/store"
	"lawdesk/internal/transport/http/ez"
	mdw "lawdesk/internal/transport/http/middleware"
)

var (
	staff   = []domain.Role{domain.RoleAdmin, domain.RoleLawyer, domain.RoleParalegal}
	lawyers = []domain.Role{domain.RoleAdmin, domain.RoleLawyer}
)

type Module struct{ st *store.Store }

func New(st *store.Store) *Module { return &Module{st: st} }

func (m *Module) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api)

	ez.Register(e, ez.Action[struct{}, []domain.Case]{
		Method: http.MethodGet, Path: "/cases", Binder: ez.BindNone, Roles: staff,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Case, error) {
			return m.st.Cases(), nil
		},
	})

	ez.Register(e, ez.Action[struct{}, domain.Case]{
		Method: http.MethodGet, Path: "/cases/:id", Binder: ez.BindNone, Roles: staff,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Case, error) {
			cs, ok := m.st.CaseByID(c.Param("id"))
			if !ok {
				return domain.Case{}, ez.NotFound("case not found")
			}
			return cs, nil
		},
	})

	ez.Register(e, ez.Action[domain.Case, domain.Case]{
		Method: http.MethodPost, Path: "/cases", Binder: ez.BindJSON, Roles: lawyers,
		Handler: func(c *gin.Context, in *domain.Case) (domain.Case, error) {
			return m.st.AddCase(*in), nil
		},
	})

	// 更新/删除：id 不存在静默吸收，不报错
	ez.Register(e, ez.Action[domain.CasePatch, gin.H]{
		Method: http.MethodPut, Path: "/cases/:id", Binder: ez.BindJSON, Roles: lawyers,
		Handler: func(c *gin.Context, in *domain.CasePatch) (gin.H, error) {
			id := c.Param("id")
			m.st.UpdateCase(id, *in)
			return gin.H{"id": id}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/cases/:id", Binder: ez.BindNone, Roles: lawyers,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			m.st.DeleteCase(id)
			return gin.H{"id": id}, nil
		},
	})

	// 客户门户：client 角色只看得到自己名下的案件
	ez.Register(e, ez.Action[struct{}, []domain.Case]{
		Method: http.MethodGet, Path: "/portal/cases", Binder: ez.BindNone,
		Roles: []domain.Role{domain.RoleClient},
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Case, error) {
			sess := mdw.SnapshotFrom(c).Session
			out := make([]domain.Case, 0)
			for _, cs := range m.st.Cases() {
				if sess.Role == domain.RoleAdmin || cs.Client == sess.Name {
					out = append(out, cs)
				}
			}
			return out, nil
		},
	})
}
