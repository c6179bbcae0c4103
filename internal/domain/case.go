package domain

type CaseStatus string

const (
	CaseActive  CaseStatus = "active"
	CasePending CaseStatus = "pending"
	CaseClosed  CaseStatus = "closed"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Case 案件记录。ID 形如 CASE-<year>-<seq>，创建后不可变；
// 日期统一用 "2006-01-02" 字符串，金额为 Rupiah 数值。
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Status      CaseStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Client      string     `json:"client"`
	ClientID    int        `json:"clientId"`
	AssignedTo  []string   `json:"assignedTo"`
	CreatedAt   string     `json:"createdAt"`
	Deadline    string     `json:"deadline"`
	Description string     `json:"description"`
	Progress    int        `json:"progress"` // 0–100
	Value       float64    `json:"value"`
	Documents   int        `json:"documents"`
	Notes       int        `json:"notes"`
}

// CasePatch 字段级合并更新，nil 字段保持原值
type CasePatch struct {
	Title       *string     `json:"title"`
	Type        *string     `json:"type"`
	Status      *CaseStatus `json:"status"`
	Priority    *Priority   `json:"priority"`
	Client      *string     `json:"client"`
	ClientID    *int        `json:"clientId"`
	AssignedTo  *[]string   `json:"assignedTo"`
	Deadline    *string     `json:"deadline"`
	Description *string     `json:"description"`
	Progress    *int        `json:"progress"`
	Value       *float64    `json:"value"`
	Documents   *int        `json:"documents"`
	Notes       *int        `json:"notes"`
}
