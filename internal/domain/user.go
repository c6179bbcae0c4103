package domain

// Role 决定路由与数据可见范围
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLawyer    Role = "lawyer"
	RoleParalegal Role = "paralegal"
	RoleClient    Role = "client"
)

// User 后台账号（持久化到本地 kv，密码只存 bcrypt 哈希）
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Sanitized 返回去掉凭证字段的副本（对外输出用）
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

type UserPatch struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Role     *Role   `json:"role"`
	Title    *string `json:"title"`
	Status   *string `json:"status"`
	Password *string `json:"password"` // 非空则重置密码
}

// Session 登录成功后绑定到当前会话的身份（不含任何密码字段）
type Session struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Title  string `json:"title"`
}
