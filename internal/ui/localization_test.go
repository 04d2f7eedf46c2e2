package ui

import "testing"

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("no texts for %s", code)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("%s is missing %q", code, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ru", "ru"},
		{"system", "en"},
		{"xx", "en"},
		{"pt", "pt"},
	}

	for _, tt := range tests {
		l := NewLocalization()
		l.SetLanguage(tt.input)
		if got := l.GetCurrentLanguage(); got != tt.expected {
			t.Errorf("SetLanguage(%q): current = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText(KeyComingSoon); got != "Скоро" {
		t.Errorf("GetText(KeyComingSoon) = %q", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("unknown key should return itself, got %q", got)
	}
}
