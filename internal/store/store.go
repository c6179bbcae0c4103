// Package store 持有会话期内权威的案件/账单集合（内存态）以及只读的委托人列表。
// 所有变更同步生效，排序固定为最新在前；找不到 id 一律静默吸收，不返回错误。
package store

import (
	"sync"
	"time"

	"lawdesk/internal/domain"
)

const dateLayout = "2006-01-02"

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	cases    []domain.Case
	invoices []domain.Invoice
	clients  []domain.Client
}

func New(cases []domain.Case, invoices []domain.Invoice, clients []domain.Client) *Store {
	return &Store{
		now:      time.Now,
		cases:    append([]domain.Case(nil), cases...),
		invoices: append([]domain.Invoice(nil), invoices...),
		clients:  append([]domain.Client(nil), clients...),
	}
}

/* ---------- Case ---------- */

func (s *Store) Cases() []domain.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Case(nil), s.cases...)
}

// AddCase 分配 id 与 createdAt，progress/documents/notes 归零，头插返回最终记录。
// 字段校验是表单层的事，store 信任调用方。
func (s *Store) AddCase(c domain.Case) domain.Case {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = nextID("CASE", s.now(), caseIDs(s.cases))
	c.CreatedAt = s.now().Format(dateLayout)
	c.Progress, c.Documents, c.Notes = 0, 0, 0
	s.cases = append([]domain.Case{c}, s.cases...)
	return c
}

func (s *Store) UpdateCase(id string, p domain.CasePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cases {
		if s.cases[i].ID != id {
			continue
		}
		c := &s.cases[i]
		if p.Title != nil {
			c.Title = *p.Title
		}
		if p.Type != nil {
			c.Type = *p.Type
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		if p.Priority != nil {
			c.Priority = *p.Priority
		}
		if p.Client != nil {
			c.Client = *p.Client
		}
		if p.ClientID != nil {
			c.ClientID = *p.ClientID
		}
		if p.AssignedTo != nil {
			c.AssignedTo = append([]string(nil), (*p.AssignedTo)...)
		}
		if p.Deadline != nil {
			c.Deadline = *p.Deadline
		}
		if p.Description != nil {
			c.Description = *p.Description
		}
		if p.Progress != nil {
			c.Progress = *p.Progress
		}
		if p.Value != nil {
			c.Value = *p.Value
		}
		if p.Documents != nil {
			c.Documents = *p.Documents
		}
		if p.Notes != nil {
			c.Notes = *p.Notes
		}
		return
	}
	// id 不存在：no-op
}

func (s *Store) DeleteCase(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cases {
		if s.cases[i].ID == id {
			s.cases = append(s.cases[:i], s.cases[i+1:]...)
			return
		}
	}
}

func (s *Store) CaseByID(id string) (domain.Case, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cases {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Case{}, false
}

/* ---------- Invoice ---------- */

func (s *Store) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invoice(nil), s.invoices...)
}

// AddInvoice 分配 id，状态固定 draft，issuedAt 取当天；
// 明细金额与总额由 hours×rate 推导，覆盖调用方传入的值。
func (s *Store) AddInvoice(inv domain.Invoice) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv.ID = nextID("INV", s.now(), invoiceIDs(s.invoices))
	inv.Status = domain.InvoiceDraft
	inv.IssuedAt = s.now().Format(dateLayout)
	inv.Items, inv.Amount = priceItems(inv.Items)
	s.invoices = append([]domain.Invoice{inv}, s.invoices...)
	return inv
}

func (s *Store) UpdateInvoice(id string, p domain.InvoicePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		inv := &s.invoices[i]
		if p.CaseID != nil {
			inv.CaseID = *p.CaseID
		}
		if p.Client != nil {
			inv.Client = *p.Client
		}
		if p.ClientID != nil {
			inv.ClientID = *p.ClientID
		}
		if p.Status != nil {
			inv.Status = *p.Status
		}
		if p.DueDate != nil {
			inv.DueDate = *p.DueDate
		}
		if p.PaidAt != nil {
			inv.PaidAt = *p.PaidAt
		}
		if p.Items != nil {
			inv.Items, inv.Amount = priceItems(*p.Items)
		}
		return
	}
}

func (s *Store) DeleteInvoice(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return
		}
	}
}

func (s *Store) InvoiceByID(id string) (domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return domain.Invoice{}, false
}

/* ---------- Client（只读） ---------- */

func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Client(nil), s.clients...)
}

func (s *Store) ClientByID(id int) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cl := range s.clients {
		if cl.ID == id {
			return cl, true
		}
	}
	return domain.Client{}, false
}

/* ---------- helpers ---------- */

func caseIDs(cs []domain.Case) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func invoiceIDs(is []domain.Invoice) []string {
	ids := make([]string, len(is))
	for i, inv := range is {
		ids[i] = inv.ID
	}
	return ids
}

func priceItems(items []domain.InvoiceItem) ([]domain.InvoiceItem, float64) {
	out := append([]domain.InvoiceItem(nil), items...)
	var total float64
	for i := range out {
		out[i].Amount = out[i].Hours * out[i].Rate
		total += out[i].Amount
	}
	return out, total
}
