package settings

import (
	"errors"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/format"
)

var (
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidUnits    = errors.New("invalid units")
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return format.LayoutDirection(string(l)) == format.RTL
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Next is the theme after t in the light → dark → system cycle.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	}
	return ThemeLight
}

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

func (u Units) IsValid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

type AppSettings struct {
	Language      Language `json:"language" yaml:"language"`
	Theme         Theme    `json:"theme" yaml:"theme"`
	Units         Units    `json:"units" yaml:"units"`
	Notifications bool     `json:"notifications" yaml:"notifications"`
}

func Defaults() AppSettings {
	return AppSettings{
		Language:      LanguageEnglish,
		Theme:         ThemeSystem,
		Units:         UnitsMetric,
		Notifications: true,
	}
}

// Validate returns the first invalid field as a sentinel error.
func (s AppSettings) Validate() error {
	if !s.Language.IsValid() {
		return ErrInvalidLanguage
	}
	if !s.Theme.IsValid() {
		return ErrInvalidTheme
	}
	if !s.Units.IsValid() {
		return ErrInvalidUnits
	}
	return nil
}

// IsDark resolves the effective color scheme. systemDark is the host's
// current preference and only matters for ThemeSystem.
func (s AppSettings) IsDark(systemDark bool) bool {
	return s.Theme == ThemeDark || (s.Theme == ThemeSystem && systemDark)
}

func (s AppSettings) Direction() format.Direction {
	return format.LayoutDirection(string(s.Language))
}
