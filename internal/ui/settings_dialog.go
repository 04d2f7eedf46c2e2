package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiKeyEntry          *widget.Entry
	contentLanguageEntry *widget.Entry
	randomPagesCheck     *widget.Check
	maxRandomPageEntry   *widget.Entry
	highlightEntry       *widget.Entry
	languageSelect       *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder("v3 API key")

	sd.contentLanguageEntry = widget.NewEntry()
	sd.contentLanguageEntry.SetPlaceHolder(config.DefaultContentLanguage)

	sd.randomPagesCheck = widget.NewCheck(l.GetText(KeyRandomPages), nil)

	sd.maxRandomPageEntry = widget.NewEntry()
	sd.maxRandomPageEntry.SetPlaceHolder("1-" + strconv.Itoa(config.MaxRandomPageLimit))

	sd.highlightEntry = widget.NewEntry()
	sd.highlightEntry.SetPlaceHolder(strconv.Itoa(config.DefaultHighlightID))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyCatalogSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(l.GetText(KeyContentLanguage)+":"),
		sd.contentLanguageEntry,

		sd.randomPagesCheck,

		widget.NewLabel(l.GetText(KeyMaxRandomPage)+":"),
		sd.maxRandomPageEntry,

		widget.NewLabel(l.GetText(KeyHighlightID)+":"),
		sd.highlightEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	sd.contentLanguageEntry.SetText(sd.settings.GetContentLanguage())
	sd.randomPagesCheck.SetChecked(sd.settings.GetRandomPages())
	sd.maxRandomPageEntry.SetText(strconv.Itoa(sd.settings.GetMaxRandomPage()))
	sd.highlightEntry.SetText(strconv.FormatInt(sd.settings.GetHighlightID(), 10))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave stores the fields the user edited. Untouched fields keep any value
// layered in from the command line. Unparseable numbers keep the stored value.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	s := sd.settings

	if sd.apiKeyEntry.Text != s.GetAPIKey() {
		s.SetAPIKey(sd.apiKeyEntry.Text)
	}
	if sd.contentLanguageEntry.Text != s.GetContentLanguage() {
		s.SetContentLanguage(sd.contentLanguageEntry.Text)
	}
	if sd.randomPagesCheck.Checked != s.GetRandomPages() {
		s.SetRandomPages(sd.randomPagesCheck.Checked)
	}

	if v, err := strconv.Atoi(strings.TrimSpace(sd.maxRandomPageEntry.Text)); err == nil && v != s.GetMaxRandomPage() {
		s.SetMaxRandomPage(v)
	}
	if v, err := strconv.ParseInt(strings.TrimSpace(sd.highlightEntry.Text), 10, 64); err == nil && v != s.GetHighlightID() {
		s.SetHighlightID(v)
	}

	if sd.languageSelect.Selected != "" && sd.languageSelect.Selected != s.GetLanguage() {
		s.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
