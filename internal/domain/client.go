package domain

type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientCorporate  ClientType = "corporate"
)

// Client 委托人，本核心只读，由种子数据提供
type Client struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Type          ClientType `json:"type"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	ContactPerson string     `json:"contactPerson,omitempty"`
	ActiveCases   int        `json:"activeCases"`
	TotalCases    int        `json:"totalCases"`
	TotalBilled   float64    `json:"totalBilled"`
	Status        string     `json:"status"`
	JoinedAt      string     `json:"joinedAt"`
}
