package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fabler/jetflix/internal/model"
)

const testTimeout = 2 * time.Second

type fetchResult struct {
	movies []model.Movie
	movie  model.Movie
	err    error
}

// pendingCall is one repository call waiting for the test to answer it
type pendingCall struct {
	ctx      context.Context
	kind     SectionKind
	movieID  int64
	language string
	page     int
	reply    chan fetchResult
}

func (c *pendingCall) respond(movies []model.Movie, err error) {
	c.reply <- fetchResult{movies: movies, err: err}
}

func (c *pendingCall) respondMovie(movie model.Movie, err error) {
	c.reply <- fetchResult{movie: movie, err: err}
}

// gatedRepo hands every call to the test through calls. When ignoreCancel
// is set, a call keeps waiting for its reply even after its context ends,
// which lets tests deliver stale results on purpose.
type gatedRepo struct {
	calls        chan *pendingCall
	ignoreCancel bool
}

func newGatedRepo() *gatedRepo {
	return &gatedRepo{calls: make(chan *pendingCall, 32)}
}

func (r *gatedRepo) wait(ctx context.Context, call *pendingCall) fetchResult {
	r.calls <- call
	if r.ignoreCancel {
		return <-call.reply
	}
	select {
	case res := <-call.reply:
		return res
	case <-ctx.Done():
		return fetchResult{err: ctx.Err()}
	}
}

func (r *gatedRepo) FetchSection(ctx context.Context, kind SectionKind, language string, page int) ([]model.Movie, error) {
	res := r.wait(ctx, &pendingCall{ctx: ctx, kind: kind, language: language, page: page, reply: make(chan fetchResult, 1)})
	return res.movies, res.err
}

func (r *gatedRepo) FetchMovie(ctx context.Context, id int64, language string) (model.Movie, error) {
	res := r.wait(ctx, &pendingCall{ctx: ctx, movieID: id, language: language, reply: make(chan fetchResult, 1)})
	return res.movie, res.err
}

func (r *gatedRepo) next(t *testing.T) *pendingCall {
	t.Helper()
	select {
	case call := <-r.calls:
		return call
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for repository call")
		return nil
	}
}

// instantRepo answers immediately from a table keyed by kind
type instantRepo struct {
	mu       sync.Mutex
	sections map[SectionKind][]model.Movie
	movies   map[int64]model.Movie
	fail     map[SectionKind]error
	pages    map[SectionKind][]int
	langs    []string
}

func (r *instantRepo) FetchSection(ctx context.Context, kind SectionKind, language string, page int) ([]model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pages == nil {
		r.pages = make(map[SectionKind][]int)
	}
	r.pages[kind] = append(r.pages[kind], page)
	r.langs = append(r.langs, language)
	if err := r.fail[kind]; err != nil {
		return nil, err
	}
	return r.sections[kind], nil
}

func (r *instantRepo) FetchMovie(ctx context.Context, id int64, language string) (model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[id]
	if !ok {
		return model.Movie{}, errors.New("not found")
	}
	return m, nil
}

// countingObserver records observer events
type countingObserver struct {
	mu        sync.Mutex
	started   int
	finished  int
	failed    int
	discarded int
}

func (o *countingObserver) FetchStarted(string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started++
}

func (o *countingObserver) FetchFinished(_ string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished++
	if err != nil {
		o.failed++
	}
}

func (o *countingObserver) FetchDiscarded(string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.discarded++
}

func (o *countingObserver) snapshot() (started, finished, failed, discarded int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.started, o.finished, o.failed, o.discarded
}

func awaitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(testTimeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
