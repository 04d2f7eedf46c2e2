package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/model"
)

// stubRepo answers every call immediately from fixed tables
type stubRepo struct {
	sections map[catalog.SectionKind][]model.Movie
	fail     error
}

func (r *stubRepo) FetchSection(_ context.Context, kind catalog.SectionKind, _ string, _ int) ([]model.Movie, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return r.sections[kind], nil
}

func (r *stubRepo) FetchMovie(_ context.Context, id int64, _ string) (model.Movie, error) {
	if r.fail != nil {
		return model.Movie{}, r.fail
	}
	return model.Movie{ID: id, Title: "Highlight", Overview: "Featured."}, nil
}

func newStubRepo() *stubRepo {
	return &stubRepo{sections: map[catalog.SectionKind][]model.Movie{
		catalog.KindTopRated:   {{ID: 1, Title: "Top"}, {ID: 2, Title: "Rated"}},
		catalog.KindPopular:    {{ID: 3, Title: "Popular"}},
		catalog.KindNowPlaying: {{ID: 4, Title: "Now"}},
		catalog.KindUpcoming:   {{ID: 5, Title: "Soon"}},
	}}
}

func quietOpts() []catalog.Option {
	return []catalog.Option{catalog.WithLogger(ctxlog.Discard())}
}

func settledSection(t *testing.T, repo catalog.Repository, kind catalog.SectionKind) *catalog.Section {
	t.Helper()
	s := catalog.NewSection(context.Background(), repo, kind, "en-US", nil, quietOpts()...)
	t.Cleanup(s.Close)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := s.Await(ctx); err != nil {
		t.Fatalf("Await() error: %v", err)
	}
	return s
}

var errOffline = errors.New("offline")
