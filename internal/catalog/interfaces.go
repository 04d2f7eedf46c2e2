package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabler/jetflix/internal/model"
)

// SectionKind selects one catalog listing
type SectionKind string

const (
	KindNowPlaying SectionKind = "now_playing"
	KindTopRated   SectionKind = "top_rated"
	KindPopular    SectionKind = "popular"
	KindTrending   SectionKind = "trending"
	KindUpcoming   SectionKind = "upcoming"
)

// String returns the string representation of SectionKind
func (k SectionKind) String() string {
	return string(k)
}

// AllSectionKinds returns every supported listing in a stable order
func AllSectionKinds() []SectionKind {
	return []SectionKind{KindNowPlaying, KindTopRated, KindPopular, KindTrending, KindUpcoming}
}

// ParseSectionKind accepts the kind names with either '-' or '_' separators
func ParseSectionKind(s string) (SectionKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, k := range AllSectionKinds() {
		if string(k) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown section kind: %q", s)
}

// Repository is the movie data source consumed by the coordinators.
type Repository interface {
	FetchSection(ctx context.Context, kind SectionKind, language string, page int) ([]model.Movie, error)
	FetchMovie(ctx context.Context, id int64, language string) (model.Movie, error)
}

// Observer receives fetch lifecycle events, e.g. for metrics.
type Observer interface {
	FetchStarted(name string)
	FetchFinished(name string, err error, elapsed time.Duration)
	FetchDiscarded(name string)
}

type noopObserver struct{}

func (noopObserver) FetchStarted(string)                        {}
func (noopObserver) FetchFinished(string, error, time.Duration) {}
func (noopObserver) FetchDiscarded(string)                      {}
