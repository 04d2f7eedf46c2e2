package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHome              = "home"
	KeyComingSoon        = "coming_soon"
	KeyComingSoonBanner  = "coming_soon_banner"
	KeyUpcoming          = "upcoming"
	KeyJetFlixOriginals  = "jetflix_originals"
	KeyPopularOnJetFlix  = "popular_on_jetflix"
	KeyTrendingNow       = "trending_now"
	KeyRefresh           = "refresh"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAPIKey            = "api_key"
	KeyContentLanguage   = "content_language"
	KeyRandomPages       = "random_pages"
	KeyMaxRandomPage     = "max_random_page"
	KeyHighlightID       = "highlight_id"
	KeyCatalogSettings   = "catalog_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyClose             = "close"
	KeyNoOverview        = "no_overview"
	KeyReleased          = "released"
	KeyCatalogError      = "catalog_error"
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
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
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
		KeyAppTitle:          "JetFlix",
		KeyHome:              "Home",
		KeyComingSoon:        "Coming Soon",
		KeyComingSoonBanner:  "Coming soon",
		KeyUpcoming:          "Upcoming",
		KeyJetFlixOriginals:  "JetFlix Originals",
		KeyPopularOnJetFlix:  "Popular on JetFlix",
		KeyTrendingNow:       "Trending Now",
		KeyRefresh:           "Refresh",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAPIKey:            "TMDB API Key",
		KeyContentLanguage:   "Content Language",
		KeyRandomPages:       "Shuffle pages on refresh",
		KeyMaxRandomPage:     "Highest random page",
		KeyHighlightID:       "Highlighted movie ID",
		KeyCatalogSettings:   "Catalog Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyClose:             "Close",
		KeyNoOverview:        "No overview available.",
		KeyReleased:          "Released",
		KeyCatalogError:      "The catalog could not be loaded",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "JetFlix",
		KeyHome:              "Главная",
		KeyComingSoon:        "Скоро",
		KeyComingSoonBanner:  "Скоро в JetFlix",
		KeyUpcoming:          "Скоро в кино",
		KeyJetFlixOriginals:  "Оригиналы JetFlix",
		KeyPopularOnJetFlix:  "Популярное на JetFlix",
		KeyTrendingNow:       "Сейчас в тренде",
		KeyRefresh:           "Обновить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAPIKey:            "Ключ API TMDB",
		KeyContentLanguage:   "Язык контента",
		KeyRandomPages:       "Случайные страницы при обновлении",
		KeyMaxRandomPage:     "Максимальная случайная страница",
		KeyHighlightID:       "ID фильма в шапке",
		KeyCatalogSettings:   "Настройки каталога",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyClose:             "Закрыть",
		KeyNoOverview:        "Описание отсутствует.",
		KeyReleased:          "Выход",
		KeyCatalogError:      "Не удалось загрузить каталог",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "JetFlix",
		KeyHome:              "Início",
		KeyComingSoon:        "Em Breve",
		KeyComingSoonBanner:  "Em breve",
		KeyUpcoming:          "Próximos lançamentos",
		KeyJetFlixOriginals:  "Originais JetFlix",
		KeyPopularOnJetFlix:  "Populares na JetFlix",
		KeyTrendingNow:       "Em Alta",
		KeyRefresh:           "Atualizar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAPIKey:            "Chave da API TMDB",
		KeyContentLanguage:   "Idioma do conteúdo",
		KeyRandomPages:       "Páginas aleatórias ao atualizar",
		KeyMaxRandomPage:     "Maior página aleatória",
		KeyHighlightID:       "ID do filme em destaque",
		KeyCatalogSettings:   "Configurações do catálogo",
		KeyInterfaceSettings: "Configurações da interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyClose:             "Fechar",
		KeyNoOverview:        "Sinopse indisponível.",
		KeyReleased:          "Lançamento",
		KeyCatalogError:      "Não foi possível carregar o catálogo",
	}
}
