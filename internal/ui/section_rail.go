package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/model"
	"github.com/fabler/jetflix/internal/resource"
)

// SectionRail is a titled horizontal row of movie cards bound to one
// catalog section. Only a loaded section is drawn; while loading or after a
// failure the rail stays hidden.
type SectionRail struct {
	section      *catalog.Section
	selection    *catalog.Selection
	localization *Localization
	titleKey     string
	loader       PosterLoader
	logger       *slog.Logger

	titleLabel *widget.Label
	cards      *fyne.Container
	container  *fyne.Container

	unsubscribe func()
}

// NewSectionRail creates a rail for section titled by the localization key
func NewSectionRail(section *catalog.Section, selection *catalog.Selection, localization *Localization, titleKey string, loader PosterLoader, logger *slog.Logger) *SectionRail {
	if logger == nil {
		logger = slog.Default()
	}
	r := &SectionRail{
		section:      section,
		selection:    selection,
		localization: localization,
		titleKey:     titleKey,
		loader:       loader,
		logger:       logger.With("section", section.Name()),
	}
	r.createUI()
	return r
}

func (r *SectionRail) createUI() {
	r.titleLabel = widget.NewLabel(r.localization.GetText(r.titleKey))
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.SizeName = theme.SizeNameSubHeadingText

	r.cards = container.NewHBox()
	scroll := container.NewHScroll(r.cards)
	scroll.SetMinSize(fyne.NewSize(0, cardSize().Height+RailSpacing))

	r.container = container.NewBorder(r.titleLabel, nil, nil, nil, scroll)
	r.container.Hide()
}

// Container returns the rail's root object
func (r *SectionRail) Container() *fyne.Container {
	return r.container
}

// Bind starts following the section. States are drawn on the UI goroutine.
func (r *SectionRail) Bind() {
	if r.unsubscribe != nil {
		return
	}
	r.unsubscribe = r.section.Subscribe(func(state resource.Resource[[]model.Movie]) {
		fyne.Do(func() { r.render(state) })
	})
}

// Unbind stops following the section
func (r *SectionRail) Unbind() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// RefreshTexts re-reads the localized title
func (r *SectionRail) RefreshTexts() {
	r.titleLabel.SetText(r.localization.GetText(r.titleKey))
}

func (r *SectionRail) render(state resource.Resource[[]model.Movie]) {
	state.Match(
		func() {
			r.showMovies(nil)
		},
		func(movies []model.Movie) {
			r.showMovies(movies)
		},
		func(err error) {
			r.logger.Warn("section unavailable", "error", err)
			r.showMovies(nil)
		},
	)
}

func (r *SectionRail) showMovies(movies []model.Movie) {
	if len(movies) == 0 {
		r.cards.Objects = nil
		r.cards.Refresh()
		r.container.Hide()
		return
	}

	objects := make([]fyne.CanvasObject, 0, len(movies))
	for _, m := range movies {
		card := NewMovieCard(r.loader, r.logger, r.selection.Set)
		card.SetMovie(m)
		objects = append(objects, card)
	}
	r.cards.Objects = objects
	r.cards.Refresh()
	r.container.Show()
}

// Movies returns the movies currently drawn, in order
func (r *SectionRail) Movies() []model.Movie {
	out := make([]model.Movie, 0, len(r.cards.Objects))
	for _, obj := range r.cards.Objects {
		if card, ok := obj.(*MovieCard); ok {
			out = append(out, card.Movie())
		}
	}
	return out
}
