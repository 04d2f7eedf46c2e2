package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/config"
)

func TestSettingsDialog_LoadAndSave(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetAPIKey("old")

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved++ })
	sd.loadCurrentSettings()

	if sd.apiKeyEntry.Text != "old" {
		t.Errorf("api key entry = %q", sd.apiKeyEntry.Text)
	}
	if sd.contentLanguageEntry.Text != config.DefaultContentLanguage {
		t.Errorf("language entry = %q", sd.contentLanguageEntry.Text)
	}
	if !sd.randomPagesCheck.Checked {
		t.Error("random pages should be checked by default")
	}

	sd.apiKeyEntry.SetText("new-key")
	sd.contentLanguageEntry.SetText("ru-RU")
	sd.randomPagesCheck.SetChecked(false)
	sd.maxRandomPageEntry.SetText("99")
	sd.highlightEntry.SetText("not a number")
	sd.languageSelect.SetSelected("ru")

	sd.onSave(false)
	if saved != 0 || settings.GetAPIKey() != "old" {
		t.Fatal("cancel must not store anything")
	}

	sd.onSave(true)
	if saved != 1 {
		t.Errorf("onSaved calls = %d, expected 1", saved)
	}
	if settings.GetAPIKey() != "new-key" {
		t.Errorf("api key = %q", settings.GetAPIKey())
	}
	if settings.GetContentLanguage() != "ru-RU" {
		t.Errorf("content language = %q", settings.GetContentLanguage())
	}
	if settings.GetRandomPages() {
		t.Error("random pages should be off")
	}
	if settings.GetMaxRandomPage() != config.MaxRandomPageLimit {
		t.Errorf("max random page = %d, expected clamp to %d", settings.GetMaxRandomPage(), config.MaxRandomPageLimit)
	}
	if settings.GetHighlightID() != config.DefaultHighlightID {
		t.Errorf("unparseable id changed highlight to %d", settings.GetHighlightID())
	}
	if settings.GetLanguage() != "ru" {
		t.Errorf("ui language = %q", settings.GetLanguage())
	}
}

func TestSettingsDialog_KeepsUntouchedOverrides(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetAPIKey("saved")
	key := "from-flag"
	settings.Override(config.Overrides{APIKey: &key})

	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()
	sd.contentLanguageEntry.SetText("pt-BR")
	sd.onSave(true)

	if got := app.Preferences().String(config.KeyAPIKey); got != "saved" {
		t.Errorf("untouched override was stored: %q", got)
	}
	if settings.GetAPIKey() != "from-flag" {
		t.Errorf("api key = %q, expected the override to stay active", settings.GetAPIKey())
	}
	if got := app.Preferences().String(config.KeyContentLanguage); got != "pt-BR" {
		t.Errorf("edited language not stored: %q", got)
	}
}
