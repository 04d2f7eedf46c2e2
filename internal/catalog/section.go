package catalog

import (
	"context"
	"fmt"

	"github.com/fabler/jetflix/internal/model"
)

// Section coordinates the movie list of one catalog listing
type Section struct {
	*Coordinator[[]model.Movie]
	kind SectionKind
}

// NewSection creates the coordinator for kind and starts its first fetch
func NewSection(ctx context.Context, repo Repository, kind SectionKind, language string, pages PagePolicy, opts ...Option) *Section {
	if pages == nil {
		pages = FixedPage(MinPage)
	}
	fetch := func(ctx context.Context) ([]model.Movie, error) {
		page := pages.Next()
		movies, err := repo.FetchSection(ctx, kind, language, page)
		if err != nil {
			return nil, fmt.Errorf("fetch %s page %d: %w", kind, page, err)
		}
		return movies, nil
	}
	return &Section{
		Coordinator: NewCoordinator(ctx, string(kind), fetch, opts...),
		kind:        kind,
	}
}

// Kind returns the listing this section shows
func (s *Section) Kind() SectionKind {
	return s.kind
}

// CurrentMovies returns the payload of the last successful fetch. It reports
// false while loading or after a failure.
func (s *Section) CurrentMovies() ([]model.Movie, bool) {
	return s.State().Value()
}

// MovieByID returns the first movie with id in the current payload. It
// reports false while loading, after a failure, or when nothing matches.
func (s *Section) MovieByID(id int64) (model.Movie, bool) {
	movies, ok := s.CurrentMovies()
	if !ok {
		return model.Movie{}, false
	}
	return model.FindByID(movies, id)
}

// Feature coordinates a single movie fetched by identifier, e.g. the
// highlighted movie at the top of the home feed
type Feature struct {
	*Coordinator[model.Movie]
	movieID int64
}

// NewFeature creates the coordinator for movie id and starts its first fetch
func NewFeature(ctx context.Context, repo Repository, id int64, language string, opts ...Option) *Feature {
	fetch := func(ctx context.Context) (model.Movie, error) {
		movie, err := repo.FetchMovie(ctx, id, language)
		if err != nil {
			return model.Movie{}, fmt.Errorf("fetch movie %d: %w", id, err)
		}
		return movie, nil
	}
	return &Feature{
		Coordinator: NewCoordinator(ctx, "highlight", fetch, opts...),
		movieID:     id,
	}
}

// MovieID returns the identifier of the featured movie
func (f *Feature) MovieID() int64 {
	return f.movieID
}

// Movie returns the featured movie once it has loaded
func (f *Feature) Movie() (model.Movie, bool) {
	return f.State().Value()
}
