package catalog

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Home defaults
const (
	DefaultLanguage      = "en-US"
	DefaultHighlightID   = 550
	DefaultMaxRandomPage = 5
)

// HomeConfig selects what the home feed fetches
type HomeConfig struct {
	Language      string
	HighlightID   int64
	RandomPages   bool        // random page per refresh for the randomized rails
	MaxRandomPage int         // upper bound for random pages
	Source        rand.Source // nil seeds from the clock
}

func (cfg HomeConfig) withDefaults() HomeConfig {
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.HighlightID <= 0 {
		cfg.HighlightID = DefaultHighlightID
	}
	if cfg.MaxRandomPage < MinPage {
		cfg.MaxRandomPage = DefaultMaxRandomPage
	}
	return cfg
}

// Home bundles every coordinator behind the dashboard. It is built once
// and handed to the screens that need it.
type Home struct {
	Highlight  *Feature
	Originals  *Section // top rated
	Popular    *Section
	Trending   *Section // now playing
	ComingSoon *Section // upcoming

	Selection *Selection
}

// NewHome creates and starts all coordinators of the dashboard. They live
// until ctx ends or Close is called.
func NewHome(ctx context.Context, repo Repository, cfg HomeConfig, opts ...Option) *Home {
	cfg = cfg.withDefaults()

	randomized := func() PagePolicy {
		if cfg.RandomPages {
			// rand.Source is not safe for concurrent use; each rail gets its own
			var src rand.Source
			if cfg.Source != nil {
				src = rand.NewSource(cfg.Source.Int63())
			}
			return RandomPage(MinPage, cfg.MaxRandomPage, src)
		}
		return FixedPage(MinPage)
	}

	return &Home{
		Highlight:  NewFeature(ctx, repo, cfg.HighlightID, cfg.Language, opts...),
		Originals:  NewSection(ctx, repo, KindTopRated, cfg.Language, randomized(), opts...),
		Popular:    NewSection(ctx, repo, KindPopular, cfg.Language, FixedPage(MinPage), opts...),
		Trending:   NewSection(ctx, repo, KindNowPlaying, cfg.Language, randomized(), opts...),
		ComingSoon: NewSection(ctx, repo, KindUpcoming, cfg.Language, FixedPage(MinPage), opts...),
		Selection:  NewSelection(),
	}
}

// Sections returns the rails in display order
func (h *Home) Sections() []*Section {
	return []*Section{h.Originals, h.Popular, h.Trending, h.ComingSoon}
}

// RefreshAll restarts every fetch. This is the only recovery path after an
// error; nothing is retried automatically.
func (h *Home) RefreshAll() {
	h.Highlight.Refresh()
	for _, s := range h.Sections() {
		s.Refresh()
	}
}

// AwaitAll waits until every coordinator has settled
func (h *Home) AwaitAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := h.Highlight.Await(ctx)
		return err
	})
	for _, s := range h.Sections() {
		s := s
		g.Go(func() error {
			_, err := s.Await(ctx)
			return err
		})
	}
	return g.Wait()
}

// Close releases every coordinator
func (h *Home) Close() {
	h.Highlight.Close()
	for _, s := range h.Sections() {
		s.Close()
	}
}
