package domain

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

type InvoiceItem struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"` // hours × rate，由 store 推导
}

// Invoice 账单。Amount 恒等于明细金额之和。
type Invoice struct {
	ID       string        `json:"id"`
	CaseID   string        `json:"caseId"`
	Client   string        `json:"client"`
	ClientID int           `json:"clientId"`
	Amount   float64       `json:"amount"`
	Status   InvoiceStatus `json:"status"`
	IssuedAt string        `json:"issuedAt"`
	DueDate  string        `json:"dueDate"`
	PaidAt   string        `json:"paidAt"`
	Items    []InvoiceItem `json:"items"`
}

type InvoicePatch struct {
	CaseID   *string        `json:"caseId"`
	Client   *string        `json:"client"`
	ClientID *int           `json:"clientId"`
	Status   *InvoiceStatus `json:"status"`
	DueDate  *string        `json:"dueDate"`
	PaidAt   *string        `json:"paidAt"`
	Items    *[]InvoiceItem `json:"items"` // 带 items 的 patch 会重算金额
}
