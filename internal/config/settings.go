package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage  = "app_language"
	KeyCardWidth = "card_width_override"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages persisted UI preferences.
// Quantities and favorites live only for one mount and are never stored here.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language; unknown codes fall back to system
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetCardWidth returns the card width override, or fallback when none is set
func (s *Settings) GetCardWidth(fallback float32) float32 {
	value := s.app.Preferences().Float(KeyCardWidth)
	if value <= 0 {
		return fallback
	}
	return clampFloat(float32(value), MinCardWidth, MaxCardWidth)
}

// SetCardWidth stores a card width override; zero clears it
func (s *Settings) SetCardWidth(width float32) {
	if width <= 0 {
		s.app.Preferences().RemoveValue(KeyCardWidth)
		return
	}
	s.app.Preferences().SetFloat(KeyCardWidth, float64(clampFloat(width, MinCardWidth, MaxCardWidth)))
}
