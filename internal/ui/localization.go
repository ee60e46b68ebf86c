package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyProducts       = "products"
	KeyNoItemsFound   = "no_items_found"
	KeyAlertTitle     = "alert_title"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyCardSize       = "card_size"
	KeyCardCompact    = "card_compact"
	KeyCardDefault    = "card_default"
	KeyCardLarge      = "card_large"
	KeyRestartToApply = "restart_to_apply"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if text, found := l.texts[l.currentLanguage][key]; found {
		return text
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Storefront",
		KeyProducts:       "Products",
		KeyNoItemsFound:   "No items found",
		KeyAlertTitle:     "Alert",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyCardSize:       "Card size",
		KeyCardCompact:    "Compact",
		KeyCardDefault:    "Default",
		KeyCardLarge:      "Large",
		KeyRestartToApply: "The new card size applies on next launch",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Витрина",
		KeyProducts:       "Товары",
		KeyNoItemsFound:   "Товары не найдены",
		KeyAlertTitle:     "Внимание",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeyCardSize:       "Размер карточек",
		KeyCardCompact:    "Компактный",
		KeyCardDefault:    "Обычный",
		KeyCardLarge:      "Крупный",
		KeyRestartToApply: "Новый размер карточек применится при следующем запуске",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Vitrine",
		KeyProducts:       "Produtos",
		KeyNoItemsFound:   "Nenhum item encontrado",
		KeyAlertTitle:     "Alerta",
		KeyFile:           "Arquivo",
		KeyLanguage:       "Idioma",
		KeyCardSize:       "Tamanho do cartão",
		KeyCardCompact:    "Compacto",
		KeyCardDefault:    "Padrão",
		KeyCardLarge:      "Grande",
		KeyRestartToApply: "O novo tamanho será aplicado na próxima inicialização",
	}
}
