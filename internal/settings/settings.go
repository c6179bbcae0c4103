// Package settings 负责律所信息 / logo / 主题的本地持久化。
// 启动时读一次，用户每次修改时写回；坏数据一律忽略并落回默认值。
package settings

import (
	"go.uber.org/zap"

	"lawdesk/internal/core/localstore"
	"lawdesk/internal/domain"
)

const (
	firmKey  = "firmInfo"
	logoKey  = "firmLogo"
	themeKey = "alsopartners_theme"
)

type Service struct {
	kv  *localstore.Store
	log *zap.Logger
}

func NewService(kv *localstore.Store, l *zap.Logger) *Service {
	return &Service{kv: kv, log: l}
}

func Defaults() domain.FirmSettings {
	return domain.FirmSettings{
		Name:    "Also & Partners",
		Tagline: "Law Firm",
		Address: "Jl. Sudirman No. 123, Jakarta Selatan",
		Phone:   "+62 21 555 1234",
		Email:   "contact@alsoandpartners.com",
	}
}

func (s *Service) Firm() domain.FirmSettings {
	fs := Defaults()
	s.kv.Get(firmKey, &fs)
	return fs
}

// UpdateFirm 先合并进现有记录再整条落盘，返回合并结果
func (s *Service) UpdateFirm(p domain.FirmPatch) domain.FirmSettings {
	fs := s.Firm()
	if p.Name != nil {
		fs.Name = *p.Name
	}
	if p.Tagline != nil {
		fs.Tagline = *p.Tagline
	}
	if p.Address != nil {
		fs.Address = *p.Address
	}
	if p.Phone != nil {
		fs.Phone = *p.Phone
	}
	if p.Email != nil {
		fs.Email = *p.Email
	}
	if err := s.kv.Set(firmKey, fs); err != nil {
		s.log.Warn("persist firm settings failed", zap.Error(err))
	}
	return fs
}

// Logo 为不透明的图片引用（data URL 或外链），可能为空
func (s *Service) Logo() string {
	var logo string
	s.kv.Get(logoKey, &logo)
	return logo
}

// SetLogo 空串表示移除
func (s *Service) SetLogo(logo string) {
	var err error
	if logo == "" {
		err = s.kv.Delete(logoKey)
	} else {
		err = s.kv.Set(logoKey, logo)
	}
	if err != nil {
		s.log.Warn("persist logo failed", zap.Error(err))
	}
}

func (s *Service) Theme() domain.Theme {
	t := domain.ThemeLight
	s.kv.Get(themeKey, &t)
	if t != domain.ThemeDark {
		t = domain.ThemeLight
	}
	return t
}

func (s *Service) SetTheme(t domain.Theme) {
	if err := s.kv.Set(themeKey, t); err != nil {
		s.log.Warn("persist theme failed", zap.Error(err))
	}
}
