package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/catalog"
)

// ComingSoonScreen shows an animated "coming soon" banner above the rail of
// upcoming releases
type ComingSoonScreen struct {
	localization *Localization

	bannerText *canvas.Text
	progress   *widget.ProgressBarInfinite
	rail       *SectionRail
	content    fyne.CanvasObject
}

// NewComingSoonScreen builds the screen for home's upcoming section
func NewComingSoonScreen(home *catalog.Home, localization *Localization, loader PosterLoader, logger *slog.Logger) *ComingSoonScreen {
	s := &ComingSoonScreen{
		localization: localization,
		rail:         NewSectionRail(home.ComingSoon, home.Selection, localization, KeyUpcoming, loader, logger),
	}

	s.bannerText = canvas.NewText(localization.GetText(KeyComingSoonBanner), ColorBrandRed)
	s.bannerText.TextStyle = fyne.TextStyle{Bold: true}
	s.bannerText.TextSize = 32
	s.bannerText.Alignment = fyne.TextAlignCenter

	s.progress = widget.NewProgressBarInfinite()

	banner := container.NewVBox(
		container.NewCenter(s.bannerText),
		container.NewPadded(s.progress),
	)
	s.content = container.NewBorder(nil, s.rail.Container(), nil, nil, container.NewCenter(banner))
	return s
}

// Content returns the screen's root object
func (s *ComingSoonScreen) Content() fyne.CanvasObject {
	return s.content
}

// Bind attaches the rail and starts the animation
func (s *ComingSoonScreen) Bind() {
	s.rail.Bind()
	s.progress.Start()
}

// Unbind detaches the rail and stops the animation
func (s *ComingSoonScreen) Unbind() {
	s.rail.Unbind()
	s.progress.Stop()
}

// RefreshTexts re-reads localized strings
func (s *ComingSoonScreen) RefreshTexts() {
	s.bannerText.Text = s.localization.GetText(KeyComingSoonBanner)
	s.bannerText.Refresh()
	s.rail.RefreshTexts()
}
