package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/config"
	"github.com/fabler/jetflix/internal/ctxlog"
)

// HomeBuilder creates the coordinators for one session from the current
// settings. They live until ctx ends.
type HomeBuilder func(ctx context.Context) (*catalog.Home, error)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	build        HomeBuilder
	loader       PosterLoader
	logger       *slog.Logger

	home       *catalog.Home
	cancelHome context.CancelFunc
	homeScreen *HomeScreen
	comingSoon *ComingSoonScreen
	detail     *DetailSheet

	tabs          *container.AppTabs
	homeTab       *container.TabItem
	comingSoonTab *container.TabItem
	statusLabel   *widget.Label
	refreshBtn    *widget.Button
	settingsBtn   *widget.Button
}

// NewRootUI creates and initializes the main UI and loads the first session.
// ctx bounds every session the UI creates.
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, build HomeBuilder, loader PosterLoader) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		settings:     settings,
		localization: localization,
		build:        build,
		loader:       loader,
		logger:       ctxlog.FromContext(ctx),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.reload()
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.refreshBtn = widget.NewButton(IconRefresh+" "+ui.localization.GetText(KeyRefresh), ui.Refresh)
	ui.refreshBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusLabel.Hide()

	ui.homeTab = container.NewTabItem(ui.localization.GetText(KeyHome), widget.NewLabel(""))
	ui.comingSoonTab = container.NewTabItem(ui.localization.GetText(KeyComingSoon), widget.NewLabel(""))
	ui.tabs = container.NewAppTabs(ui.homeTab, ui.comingSoonTab)
	ui.tabs.SetTabLocation(container.TabLocationBottom)

	topBar := container.NewBorder(nil, nil, ui.settingsBtn, ui.refreshBtn)
	top := container.NewVBox(topBar, ui.statusLabel)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.tabs))

	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { ui.Refresh() })

	ui.window.SetOnClosed(ui.Close)
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.Refresh)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem),
		languageMenu,
	))
}

// Home returns the coordinators of the current session; nil if it failed
// to load
func (ui *RootUI) Home() *catalog.Home {
	return ui.home
}

// Refresh refetches every section of the current session. It is the only
// way to recover from a failed fetch.
func (ui *RootUI) Refresh() {
	if ui.home == nil {
		ui.reload()
		return
	}
	ui.logger.Info("refresh requested")
	ui.home.RefreshAll()
}

// reload replaces the current session with one built from the settings
func (ui *RootUI) reload() {
	ui.closeSession()

	ctx, cancel := context.WithCancel(ui.ctx)
	home, err := ui.build(ctx)
	if err != nil {
		cancel()
		ui.logger.Error("catalog unavailable", "error", err)
		ui.showStatus(ui.localization.GetText(KeyCatalogError) + ": " + err.Error())
		ui.homeTab.Content = widget.NewLabel("")
		ui.comingSoonTab.Content = widget.NewLabel("")
		ui.tabs.Refresh()
		return
	}
	ui.hideStatus()

	ui.home = home
	ui.cancelHome = cancel
	ui.homeScreen = NewHomeScreen(home, ui.localization, ui.loader, ui.logger)
	ui.comingSoon = NewComingSoonScreen(home, ui.localization, ui.loader, ui.logger)
	ui.detail = NewDetailSheet(ui.window, home.Selection, ui.localization, ui.loader, ui.logger)

	ui.homeTab.Content = ui.homeScreen.Content()
	ui.comingSoonTab.Content = ui.comingSoon.Content()
	ui.tabs.Refresh()

	ui.homeScreen.Bind()
	ui.comingSoon.Bind()
	ui.detail.Bind()
}

func (ui *RootUI) closeSession() {
	if ui.homeScreen != nil {
		ui.homeScreen.Unbind()
		ui.homeScreen = nil
	}
	if ui.comingSoon != nil {
		ui.comingSoon.Unbind()
		ui.comingSoon = nil
	}
	if ui.detail != nil {
		ui.detail.Unbind()
		ui.detail.hide()
		ui.detail = nil
	}
	if ui.home != nil {
		ui.home.Close()
		ui.home = nil
	}
	if ui.cancelHome != nil {
		ui.cancelHome()
		ui.cancelHome = nil
	}
}

// Close releases the current session
func (ui *RootUI) Close() {
	ui.closeSession()
}

func (ui *RootUI) showStatus(message string) {
	ui.statusLabel.SetText(message)
	ui.statusLabel.Show()
}

func (ui *RootUI) hideStatus() {
	ui.statusLabel.SetText("")
	ui.statusLabel.Hide()
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the new settings. Catalog options only take
// effect in a fresh session, so the session is rebuilt.
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.reload()
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.refreshBtn.SetText(IconRefresh + " " + ui.localization.GetText(KeyRefresh))
	ui.homeTab.Text = ui.localization.GetText(KeyHome)
	ui.comingSoonTab.Text = ui.localization.GetText(KeyComingSoon)
	ui.tabs.Refresh()

	if ui.homeScreen != nil {
		ui.homeScreen.RefreshTexts()
	}
	if ui.comingSoon != nil {
		ui.comingSoon.RefreshTexts()
	}
}
