package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/model"
)

// PosterLoader fetches an image by URL. It is called off the UI goroutine.
type PosterLoader func(url string) (fyne.Resource, error)

// LoadPoster loads images through Fyne's resource fetcher
func LoadPoster(url string) (fyne.Resource, error) {
	return fyne.LoadResourceFromURLString(url)
}

// ratingText formats a movie rating for cards and sheets
func ratingText(m model.Movie) string {
	return fmt.Sprintf(RatingLabelFormat, m.RatingLabel())
}

// MovieCard is a tappable poster with title and rating
type MovieCard struct {
	widget.BaseWidget

	movie    model.Movie
	loader   PosterLoader
	logger   *slog.Logger
	onTapped func(model.Movie)

	poster      *canvas.Image
	placeholder *canvas.Rectangle
	titleLabel  *widget.Label
	ratingLabel *widget.Label
}

// NewMovieCard creates an empty card. SetMovie fills it.
func NewMovieCard(loader PosterLoader, logger *slog.Logger, onTapped func(model.Movie)) *MovieCard {
	if logger == nil {
		logger = slog.Default()
	}
	c := &MovieCard{
		loader:   loader,
		logger:   logger,
		onTapped: onTapped,
	}
	c.ExtendBaseWidget(c)
	c.createUI()
	return c
}

func (c *MovieCard) createUI() {
	c.placeholder = canvas.NewRectangle(ColorSurface)
	c.placeholder.CornerRadius = 4

	c.poster = canvas.NewImageFromResource(nil)
	c.poster.FillMode = canvas.ImageFillContain

	c.titleLabel = widget.NewLabel("")
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis

	c.ratingLabel = widget.NewLabel("")
	c.ratingLabel.Importance = widget.LowImportance
}

// SetMovie shows m and starts loading its poster
func (c *MovieCard) SetMovie(m model.Movie) {
	c.movie = m
	c.titleLabel.SetText(m.DisplayTitle())
	c.ratingLabel.SetText(ratingText(m))
	c.poster.Resource = nil
	c.poster.Refresh()

	url := m.PosterURL(model.PosterSizeSmall)
	if url == "" || c.loader == nil {
		return
	}
	go c.loadPoster(m.ID, url)
}

func (c *MovieCard) loadPoster(id int64, url string) {
	res, err := c.loader(url)
	if err != nil {
		c.logger.Debug("poster unavailable", "movie", id, "url", url, "error", err)
		return
	}
	fyne.Do(func() {
		// the card may have been reused for another movie meanwhile
		if c.movie.ID != id {
			return
		}
		c.poster.Resource = res
		c.poster.Refresh()
	})
}

// Movie returns the movie currently shown
func (c *MovieCard) Movie() model.Movie {
	return c.movie
}

// Tapped selects the movie
func (c *MovieCard) Tapped(*fyne.PointEvent) {
	if c.onTapped == nil || c.movie.ID == 0 {
		return
	}
	c.onTapped(c.movie)
}

// CreateRenderer creates the widget renderer
func (c *MovieCard) CreateRenderer() fyne.WidgetRenderer {
	return &movieCardRenderer{card: c}
}

type movieCardRenderer struct {
	card   *MovieCard
	layout *fyne.Container
}

func (r *movieCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

func (r *movieCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	size := cardSize()
	return fyne.NewSize(max(min.Width, size.Width), max(min.Height, size.Height))
}

func (r *movieCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *movieCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *movieCardRenderer) Destroy() {}

func (r *movieCardRenderer) createLayout() {
	c := r.card
	size := cardSize()

	// fixed-width spacer keeps labels from stretching the card
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(size.Width, 0))

	posterArea := container.NewStack(c.placeholder, c.poster)
	footer := container.NewVBox(spacer, c.titleLabel, c.ratingLabel)
	r.layout = container.NewBorder(nil, footer, nil, nil, posterArea)
}
