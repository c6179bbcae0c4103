package auth

import "lawdesk/internal/domain"

// Snapshot 一次导航尝试时守卫看到的会话状态
type Snapshot struct {
	State   State
	Session *domain.Session
}

type Decision int

const (
	DecideLoading       Decision = iota // 会话还在恢复：先渲染占位
	DecideRender                        // 放行
	DecideRedirectLogin                 // 未登录 → /login
	DecideRedirectHome                  // 角色不符 → 默认落地页
)

// Target 重定向目标，Render/Loading 为空串
func (d Decision) Target() string {
	switch d {
	case DecideRedirectLogin:
		return "/login"
	case DecideRedirectHome:
		return "/dashboard"
	default:
		return ""
	}
}

// Decide 路由守卫：四个互斥分支，纯函数无副作用。
// allowed 为空表示任何已登录角色都可进。
func Decide(s Snapshot, allowed []domain.Role) Decision {
	switch {
	case s.State == StateInitializing:
		return DecideLoading
	case s.Session == nil:
		return DecideRedirectLogin
	case len(allowed) > 0 && !roleAllowed(s.Session.Role, allowed):
		return DecideRedirectHome
	default:
		return DecideRender
	}
}

// admin 是全局例外
func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	if role == domain.RoleAdmin {
		return true
	}
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return len(allowed) == 0
}
