package domain

// FirmSettings 律所信息，整条持久化，局部更新先合并再落盘
type FirmSettings struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type FirmPatch struct {
	Name    *string `json:"name"`
	Tagline *string `json:"tagline"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
