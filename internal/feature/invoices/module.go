// 账单接口，admin/lawyer 专属；客户门户另有只读视图
package invoices

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/domain"
	"lawdesk/internal/store"
	"lawdesk/internal/transport/http/ez"
	mdw "lawdesk/internal/transport/http/middleware"
)

var lawyers = []domain.Role{domain.RoleAdmin, domain.RoleLawyer}

type Module struct{ st *store.Store }

func New(st *store.Store) *Module { return &Module{st: st} }

func (m *Module) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api)

	ez.Register(e, ez.Action[struct{}, []domain.Invoice]{
		Method: http.MethodGet, Path: "/invoices", Binder: ez.BindNone, Roles: lawyers,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Invoice, error) {
			return m.st.Invoices(), nil
		},
	})

	ez.Register(e, ez.Action[struct{}, domain.Invoice]{
		Method: http.MethodGet, Path: "/invoices/:id", Binder: ez.BindNone, Roles: lawyers,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Invoice, error) {
			inv, ok := m.st.InvoiceByID(c.Param("id"))
			if !ok {
				return domain.Invoice{}, ez.NotFound("invoice not found")
			}
			return inv, nil
		},
	})

	// 新建固定 draft + 当天 issuedAt，金额由明细推导
	ez.Register(e, ez.Action[domain.Invoice, domain.Invoice]{
		Method: http.MethodPost, Path: "/invoices", Binder: ez.BindJSON, Roles: lawyers,
		Handler: func(c *gin.Context, in *domain.Invoice) (domain.Invoice, error) {
			return m.st.AddInvoice(*in), nil
		},
	})

	ez.Register(e, ez.Action[domain.InvoicePatch, gin.H]{
		Method: http.MethodPut, Path: "/invoices/:id", Binder: ez.BindJSON, Roles: lawyers,
		Handler: func(c *gin.Context, in *domain.InvoicePatch) (gin.H, error) {
			id := c.Param("id")
			m.st.UpdateInvoice(id, *in)
			return gin.H{"id": id}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/invoices/:id", Binder: ez.BindNone, Roles: lawyers,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			m.st.DeleteInvoice(id)
			return gin.H{"id": id}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, []domain.Invoice]{
		Method: http.MethodGet, Path: "/portal/invoices", Binder: ez.BindNone,
		Roles: []domain.Role{domain.RoleClient},
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Invoice, error) {
			sess := mdw.SnapshotFrom(c).Session
			out := make([]domain.Invoice, 0)
			for _, inv := range m.st.Invoices() {
				if sess.Role == domain.RoleAdmin || inv.Client == sess.Name {
					out = append(out, inv)
				}
			}
			return out, nil
		},
	})
}
