package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/tmdb"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey          = "tmdb_api_key"
	KeyContentLanguage = "content_language"
	KeyRandomPages     = "random_pages"
	KeyMaxRandomPage   = "max_random_page"
	KeyHighlightID     = "highlight_movie_id"
	KeyBaseURL         = "tmdb_base_url"
	KeyTimeoutSeconds  = "request_timeout_seconds"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultContentLanguage = catalog.DefaultLanguage
	DefaultRandomPages     = true
	DefaultMaxRandomPage   = catalog.DefaultMaxRandomPage
	DefaultHighlightID     = catalog.DefaultHighlightID
	DefaultBaseURL         = tmdb.DefaultBaseURL
	DefaultTimeoutSeconds  = 20
	DefaultLanguage        = "system"
)

// Limits applied by setters
const (
	MaxRandomPageLimit = 20
	MinTimeoutSeconds  = 5
	MaxTimeoutSeconds  = 120
)

// Overrides hold values that apply to this process only. They shadow the
// stored preferences and are never written back; nil fields fall through.
type Overrides struct {
	APIKey          *string
	ContentLanguage *string
	RandomPages     *bool
	MaxRandomPage   *int
	HighlightID     *int64
	BaseURL         *string
	TimeoutSeconds  *int
	Language        *string
}

// Settings manages application configuration
type Settings struct {
	app       fyne.App
	overrides Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Override layers o over the current overrides. Later calls win per field.
func (s *Settings) Override(o Overrides) {
	if o.APIKey != nil {
		v := strings.TrimSpace(*o.APIKey)
		s.overrides.APIKey = &v
	}
	if o.ContentLanguage != nil {
		v := normalizeContentLanguage(*o.ContentLanguage)
		s.overrides.ContentLanguage = &v
	}
	if o.RandomPages != nil {
		v := *o.RandomPages
		s.overrides.RandomPages = &v
	}
	if o.MaxRandomPage != nil {
		v := clampMaxRandomPage(*o.MaxRandomPage)
		s.overrides.MaxRandomPage = &v
	}
	if o.HighlightID != nil {
		v := normalizeHighlightID(*o.HighlightID)
		s.overrides.HighlightID = &v
	}
	if o.BaseURL != nil {
		v := normalizeBaseURL(*o.BaseURL)
		s.overrides.BaseURL = &v
	}
	if o.TimeoutSeconds != nil {
		v := clampTimeoutSeconds(*o.TimeoutSeconds)
		s.overrides.TimeoutSeconds = &v
	}
	if o.Language != nil {
		v := *o.Language
		s.overrides.Language = &v
	}
}

// ClearOverrides drops every process-only value
func (s *Settings) ClearOverrides() {
	s.overrides = Overrides{}
}

// GetAPIKey returns the TMDB API key; empty when not configured
func (s *Settings) GetAPIKey() string {
	if s.overrides.APIKey != nil {
		return *s.overrides.APIKey
	}
	return s.app.Preferences().String(KeyAPIKey)
}

// SetAPIKey stores the TMDB API key. A stored value replaces any override.
func (s *Settings) SetAPIKey(key string) {
	s.overrides.APIKey = nil
	s.app.Preferences().SetString(KeyAPIKey, strings.TrimSpace(key))
}

// GetContentLanguage returns the language requested from the movie API
func (s *Settings) GetContentLanguage() string {
	if s.overrides.ContentLanguage != nil {
		return *s.overrides.ContentLanguage
	}
	lang := s.app.Preferences().String(KeyContentLanguage)
	if lang == "" {
		return DefaultContentLanguage
	}
	return lang
}

// SetContentLanguage sets the language requested from the movie API
func (s *Settings) SetContentLanguage(lang string) {
	s.overrides.ContentLanguage = nil
	s.app.Preferences().SetString(KeyContentLanguage, normalizeContentLanguage(lang))
}

func normalizeContentLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultContentLanguage
	}
	return lang
}

// GetRandomPages reports whether randomized rails pick a random page
func (s *Settings) GetRandomPages() bool {
	if s.overrides.RandomPages != nil {
		return *s.overrides.RandomPages
	}
	return s.app.Preferences().BoolWithFallback(KeyRandomPages, DefaultRandomPages)
}

// SetRandomPages toggles random pages
func (s *Settings) SetRandomPages(enabled bool) {
	s.overrides.RandomPages = nil
	s.app.Preferences().SetBool(KeyRandomPages, enabled)
}

// GetMaxRandomPage returns the upper bound for random pages
func (s *Settings) GetMaxRandomPage() int {
	if s.overrides.MaxRandomPage != nil {
		return *s.overrides.MaxRandomPage
	}
	value := s.app.Preferences().Int(KeyMaxRandomPage)
	if value <= 0 {
		return DefaultMaxRandomPage
	}
	return value
}

// SetMaxRandomPage sets the upper bound for random pages
func (s *Settings) SetMaxRandomPage(page int) {
	s.overrides.MaxRandomPage = nil
	s.app.Preferences().SetInt(KeyMaxRandomPage, clampMaxRandomPage(page))
}

func clampMaxRandomPage(page int) int {
	if page < catalog.MinPage {
		return catalog.MinPage
	}
	if page > MaxRandomPageLimit {
		return MaxRandomPageLimit
	}
	return page
}

// GetHighlightID returns the movie shown at the top of the home feed
func (s *Settings) GetHighlightID() int64 {
	if s.overrides.HighlightID != nil {
		return *s.overrides.HighlightID
	}
	value := s.app.Preferences().Int(KeyHighlightID)
	if value <= 0 {
		return DefaultHighlightID
	}
	return int64(value)
}

// SetHighlightID sets the highlighted movie; non-positive ids restore the default
func (s *Settings) SetHighlightID(id int64) {
	s.overrides.HighlightID = nil
	s.app.Preferences().SetInt(KeyHighlightID, int(normalizeHighlightID(id)))
}

func normalizeHighlightID(id int64) int64 {
	if id <= 0 {
		return DefaultHighlightID
	}
	return id
}

// GetBaseURL returns the movie API base URL
func (s *Settings) GetBaseURL() string {
	if s.overrides.BaseURL != nil {
		return *s.overrides.BaseURL
	}
	url := s.app.Preferences().String(KeyBaseURL)
	if url == "" {
		return DefaultBaseURL
	}
	return url
}

// SetBaseURL sets the movie API base URL
func (s *Settings) SetBaseURL(url string) {
	s.overrides.BaseURL = nil
	s.app.Preferences().SetString(KeyBaseURL, normalizeBaseURL(url))
}

func normalizeBaseURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return DefaultBaseURL
	}
	return url
}

// GetTimeoutSeconds returns the request timeout in seconds
func (s *Settings) GetTimeoutSeconds() int {
	if s.overrides.TimeoutSeconds != nil {
		return *s.overrides.TimeoutSeconds
	}
	value := s.app.Preferences().Int(KeyTimeoutSeconds)
	if value <= 0 {
		return DefaultTimeoutSeconds
	}
	return value
}

// SetTimeoutSeconds sets the request timeout in seconds
func (s *Settings) SetTimeoutSeconds(seconds int) {
	s.overrides.TimeoutSeconds = nil
	s.app.Preferences().SetInt(KeyTimeoutSeconds, clampTimeoutSeconds(seconds))
}

func clampTimeoutSeconds(seconds int) int {
	if seconds < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return seconds
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	if s.overrides.Language != nil {
		return *s.overrides.Language
	}
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.overrides.Language = nil
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available UI language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// HomeConfig builds the home feed configuration from the effective settings
func (s *Settings) HomeConfig() catalog.HomeConfig {
	return catalog.HomeConfig{
		Language:      s.GetContentLanguage(),
		HighlightID:   s.GetHighlightID(),
		RandomPages:   s.GetRandomPages(),
		MaxRandomPage: s.GetMaxRandomPage(),
	}
}

// ClientOptions builds the movie API client options from the effective settings
func (s *Settings) ClientOptions(userAgent string) tmdb.Options {
	return tmdb.Options{
		APIKey:    s.GetAPIKey(),
		BaseURL:   s.GetBaseURL(),
		Timeout:   time.Duration(s.GetTimeoutSeconds()) * time.Second,
		UserAgent: userAgent,
	}
}
