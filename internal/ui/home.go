package ui

import (
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/model"
	"github.com/fabler/jetflix/internal/resource"
)

// HighlightBanner shows the featured movie at the top of the home feed
type HighlightBanner struct {
	widget.BaseWidget

	feature   *catalog.Feature
	selection *catalog.Selection
	loader    PosterLoader
	logger    *slog.Logger

	movie         model.Movie
	shown         bool
	backdrop      *canvas.Image
	background    *canvas.Rectangle
	titleText     *canvas.Text
	metaLabel     *widget.Label
	overviewLabel *widget.Label
	content       *fyne.Container

	unsubscribe func()
}

// NewHighlightBanner creates a banner bound to feature
func NewHighlightBanner(feature *catalog.Feature, selection *catalog.Selection, loader PosterLoader, logger *slog.Logger) *HighlightBanner {
	if logger == nil {
		logger = slog.Default()
	}
	b := &HighlightBanner{
		feature:   feature,
		selection: selection,
		loader:    loader,
		logger:    logger.With("section", feature.Name()),
	}
	b.ExtendBaseWidget(b)
	b.createUI()
	b.Hide()
	return b
}

func (b *HighlightBanner) createUI() {
	b.background = canvas.NewRectangle(ColorSurface)
	b.background.SetMinSize(fyne.NewSize(0, BannerHeight))

	b.backdrop = canvas.NewImageFromResource(nil)
	b.backdrop.FillMode = canvas.ImageFillContain

	b.titleText = canvas.NewText("", ColorBrandRed)
	b.titleText.TextStyle = fyne.TextStyle{Bold: true}
	b.titleText.TextSize = 28

	b.metaLabel = widget.NewLabel("")
	b.metaLabel.Importance = widget.LowImportance

	b.overviewLabel = widget.NewLabel("")
	b.overviewLabel.Wrapping = fyne.TextWrapWord
	b.overviewLabel.Truncation = fyne.TextTruncateEllipsis

	caption := container.NewVBox(b.titleText, b.metaLabel, b.overviewLabel)
	b.content = container.NewStack(b.background, b.backdrop, container.NewBorder(nil, caption, nil, nil))
}

// CreateRenderer creates the widget renderer
func (b *HighlightBanner) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

// Tapped opens the detail sheet for the featured movie
func (b *HighlightBanner) Tapped(*fyne.PointEvent) {
	if b.shown {
		b.selection.Set(b.movie)
	}
}

// Bind starts following the feature coordinator
func (b *HighlightBanner) Bind() {
	if b.unsubscribe != nil {
		return
	}
	b.unsubscribe = b.feature.Subscribe(func(state resource.Resource[model.Movie]) {
		fyne.Do(func() { b.render(state) })
	})
}

// Unbind stops following the feature coordinator
func (b *HighlightBanner) Unbind() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// Movie returns the movie on display, if any
func (b *HighlightBanner) Movie() (model.Movie, bool) {
	return b.movie, b.shown
}

func (b *HighlightBanner) render(state resource.Resource[model.Movie]) {
	state.Match(
		b.clear,
		b.show,
		func(err error) {
			b.logger.Warn("highlight unavailable", "error", err)
			b.clear()
		},
	)
}

func (b *HighlightBanner) clear() {
	b.movie = model.Movie{}
	b.shown = false
	b.backdrop.Resource = nil
	b.Hide()
}

func (b *HighlightBanner) show(m model.Movie) {
	b.movie = m
	b.shown = true
	b.titleText.Text = m.DisplayTitle()
	b.metaLabel.SetText(movieMeta(m))
	b.overviewLabel.SetText(m.Overview)
	b.backdrop.Resource = nil
	b.Show()
	b.Refresh()

	if url := m.BackdropURL(model.BackdropSize); url != "" && b.loader != nil {
		go func(id int64) {
			res, err := b.loader(url)
			if err != nil {
				b.logger.Debug("backdrop unavailable", "movie", id, "error", err)
				return
			}
			fyne.Do(func() {
				if b.movie.ID != id {
					return
				}
				b.backdrop.Resource = res
				b.backdrop.Refresh()
			})
		}(m.ID)
	}
}

// movieMeta renders "2021 · ★ 7.3"
func movieMeta(m model.Movie) string {
	rating := ratingText(m)
	if year := m.Year(); year > 0 {
		return strconv.Itoa(year) + MiddleDotSeparator + rating
	}
	return rating
}

// HomeScreen is the main feed: highlight banner plus the movie rails
type HomeScreen struct {
	home         *catalog.Home
	localization *Localization

	banner  *HighlightBanner
	rails   []*SectionRail
	content fyne.CanvasObject
}

// NewHomeScreen builds the feed for home
func NewHomeScreen(home *catalog.Home, localization *Localization, loader PosterLoader, logger *slog.Logger) *HomeScreen {
	h := &HomeScreen{
		home:         home,
		localization: localization,
		banner:       NewHighlightBanner(home.Highlight, home.Selection, loader, logger),
		rails: []*SectionRail{
			NewSectionRail(home.Originals, home.Selection, localization, KeyJetFlixOriginals, loader, logger),
			NewSectionRail(home.Popular, home.Selection, localization, KeyPopularOnJetFlix, loader, logger),
			NewSectionRail(home.Trending, home.Selection, localization, KeyTrendingNow, loader, logger),
		},
	}

	feed := container.NewVBox(h.banner)
	for _, r := range h.rails {
		feed.Add(r.Container())
	}
	h.content = NewPullToRefresh(container.NewVScroll(feed), home.RefreshAll)
	return h
}

// Content returns the screen's root object
func (h *HomeScreen) Content() fyne.CanvasObject {
	return h.content
}

// Bind attaches every widget to its coordinator
func (h *HomeScreen) Bind() {
	h.banner.Bind()
	for _, r := range h.rails {
		r.Bind()
	}
}

// Unbind detaches every widget
func (h *HomeScreen) Unbind() {
	h.banner.Unbind()
	for _, r := range h.rails {
		r.Unbind()
	}
}

// RefreshTexts re-reads localized strings
func (h *HomeScreen) RefreshTexts() {
	for _, r := range h.rails {
		r.RefreshTexts()
	}
}
