// 账号管理（UserManagement），管理端专属
package usersadmin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lawdesk/internal/domain"
	"lawdesk/internal/transport/http/ez"
	"lawdesk/internal/users"
)

var adminOnly = []domain.Role{domain.RoleAdmin}

type Module struct{ dir *users.Directory }

func New(dir *users.Directory) *Module { return &Module{dir: dir} }

func (m *Module) MountAdmin(admin *gin.RouterGroup) {
	e := ez.New(admin)

	ez.Register(e, ez.Action[struct{}, []domain.User]{
		Method: http.MethodGet, Path: "/users", Binder: ez.BindNone, Roles: adminOnly,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.User, error) {
			return m.dir.List(), nil
		},
	})

	type createIn struct {
		Name     string      `json:"name" binding:"required,max=64"`
		Email    string      `json:"email" binding:"required,email"`
		Password string      `json:"password" binding:"required,min=6"`
		Role     domain.Role `json:"role" binding:"required,oneof=lawyer paralegal client"`
		Title    string      `json:"title" binding:"omitempty,max=64"`
	}
	ez.Register(e, ez.Action[createIn, domain.User]{
		Method: http.MethodPost, Path: "/users", Binder: ez.BindJSON, Roles: adminOnly,
		Handler: func(c *gin.Context, in *createIn) (domain.User, error) {
			u, err := m.dir.Create(domain.User{
				Name:  in.Name,
				Email: in.Email,
				Role:  in.Role,
				Title: in.Title,
			}, in.Password)
			if errors.Is(err, users.ErrEmailTaken) {
				return domain.User{}, ez.BadRequest(err.Error())
			}
			if err != nil {
				return domain.User{}, ez.Internal("create user failed", err)
			}
			return u, nil
		},
	})

	ez.Register(e, ez.Action[domain.UserPatch, gin.H]{
		Method: http.MethodPut, Path: "/users/:id", Binder: ez.BindJSON, Roles: adminOnly,
		Handler: func(c *gin.Context, in *domain.UserPatch) (gin.H, error) {
			id, err := strconv.Atoi(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("invalid id")
			}
			m.dir.Update(id, *in)
			return gin.H{"id": id}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/users/:id", Binder: ez.BindNone, Roles: adminOnly,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.Atoi(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("invalid id")
			}
			m.dir.Delete(id)
			return gin.H{"id": id}, nil
		},
	})
}
