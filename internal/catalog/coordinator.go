package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/resource"
)

// TracerName identifies spans emitted by coordinators
const TracerName = "github.com/fabler/jetflix/internal/catalog"

// ErrClosed is returned by Await once the coordinator has been closed
var ErrClosed = errors.New("catalog: coordinator closed")

// FetchFunc performs one fetch. It must honour ctx cancellation.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Option configures coordinators
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer
}

// WithLogger sets the logger; by default the logger carried by the parent
// context is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithObserver reports fetch lifecycle events to obs
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithTracer overrides the global otel tracer
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

func buildOptions(ctx context.Context, opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = ctxlog.FromContext(ctx)
	}
	if o.observer == nil {
		o.observer = noopObserver{}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(TracerName)
	}
	return o
}

type listener[T any] struct {
	id int
	fn func(resource.Resource[T])
}

// Coordinator owns a single resource.Resource[T] and the fetch producing it.
//
// Refresh always replaces the current value with Loading. Only the result of
// the most recent Refresh is ever published: a newer Refresh cancels the
// previous fetch and any late result of it is discarded. After Close no
// result is written at all.
type Coordinator[T any] struct {
	name  string
	id    string
	fetch FetchFunc[T]
	opts  options

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     resource.Resource[T]
	seq       uint64
	version   uint64
	inflight  context.CancelFunc
	pending   bool
	settled   chan struct{}
	closed    bool
	listeners []listener[T]
	nextID    int

	// pubMu serializes delivery so listeners never observe an older state
	// after a newer one.
	pubMu     sync.Mutex
	published uint64
}

// NewCoordinator creates a coordinator bound to ctx and starts its first
// fetch. Cancelling ctx has the same effect as Close on in-flight fetches.
func NewCoordinator[T any](ctx context.Context, name string, fetch FetchFunc[T], opts ...Option) *Coordinator[T] {
	c := newCoordinator(ctx, name, fetch, opts...)
	c.Refresh()
	return c
}

func newCoordinator[T any](ctx context.Context, name string, fetch FetchFunc[T], opts ...Option) *Coordinator[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	o := buildOptions(ctx, opts)
	id := uuid.NewString()
	o.logger = o.logger.With("section", name, "coordinator", id)

	cctx, cancel := context.WithCancel(ctx)
	c := &Coordinator[T]{
		name:    name,
		id:      id,
		fetch:   fetch,
		opts:    o,
		ctx:     cctx,
		cancel:  cancel,
		state:   resource.Loading[T](),
		settled: make(chan struct{}),
	}
	// the owning scope ending releases the coordinator
	context.AfterFunc(cctx, c.Close)
	return c
}

// Name returns the section name used in logs and metrics
func (c *Coordinator[T]) Name() string {
	return c.name
}

// State returns the current resource value
func (c *Coordinator[T]) State() resource.Resource[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh sets the state to Loading and starts a new fetch. It is a no-op
// after Close.
func (c *Coordinator[T]) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.inflight != nil {
		c.inflight()
	}
	c.seq++
	seq := c.seq
	fetchCtx, cancel := context.WithCancel(c.ctx)
	c.inflight = cancel
	if !c.pending {
		c.settled = make(chan struct{})
		c.pending = true
	}
	c.state = resource.Loading[T]()
	c.version++
	c.mu.Unlock()

	c.opts.logger.Debug("fetch started", "seq", seq)
	c.opts.observer.FetchStarted(c.name)
	c.publish()

	go c.run(fetchCtx, cancel, seq)
}

func (c *Coordinator[T]) run(ctx context.Context, cancel context.CancelFunc, seq uint64) {
	defer cancel()

	ctx, span := c.opts.tracer.Start(ctx, "catalog.fetch", trace.WithAttributes(
		attribute.String("catalog.section", c.name),
		attribute.Int64("catalog.seq", int64(seq)),
	))
	started := time.Now()
	data, err := c.fetch(ctx)
	elapsed := time.Since(started)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	c.mu.Lock()
	// the owning scope may have ended before Close ran via AfterFunc
	if c.closed || seq != c.seq || c.ctx.Err() != nil {
		c.mu.Unlock()
		c.opts.logger.Debug("fetch result discarded", "seq", seq, "duration", elapsed)
		c.opts.observer.FetchDiscarded(c.name)
		return
	}
	if err != nil {
		c.state = resource.Failure[T](err)
	} else {
		c.state = resource.Success(data)
	}
	c.version++
	c.inflight = nil
	c.pending = false
	close(c.settled)
	c.mu.Unlock()

	if err != nil {
		c.opts.logger.Warn("fetch failed", "seq", seq, "duration", elapsed, "error", err)
	} else {
		c.opts.logger.Info("fetch finished", "seq", seq, "duration", elapsed)
	}
	c.opts.observer.FetchFinished(c.name, err, elapsed)
	c.publish()
}

// publish delivers the latest state to listeners if it has not been
// delivered yet.
func (c *Coordinator[T]) publish() {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	c.mu.Lock()
	if c.version == c.published || c.closed {
		c.mu.Unlock()
		return
	}
	c.published = c.version
	state := c.state
	listeners := make([]listener[T], len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l.fn(state)
	}
}

// Subscribe registers fn for every published state and calls it once with
// the current state. Listeners run on the fetching goroutine; they must not
// block and must not call Refresh synchronously. The returned func
// unregisters fn.
func (c *Coordinator[T]) Subscribe(fn func(resource.Resource[T])) (unsubscribe func()) {
	c.pubMu.Lock()
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	state := c.state
	c.mu.Unlock()
	fn(state)
	c.pubMu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Await blocks until the current fetch settles and returns the resulting
// state. It returns ctx.Err() if ctx ends first and ErrClosed after Close.
func (c *Coordinator[T]) Await(ctx context.Context) (resource.Resource[T], error) {
	for {
		c.mu.Lock()
		if c.closed {
			state := c.state
			c.mu.Unlock()
			return state, ErrClosed
		}
		if !c.pending {
			state := c.state
			c.mu.Unlock()
			return state, nil
		}
		ch := c.settled
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}
	}
}

// Close cancels any in-flight fetch and drops listeners. Results arriving
// after Close are discarded. Close is idempotent.
func (c *Coordinator[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	c.inflight = nil
	if c.pending {
		c.pending = false
		close(c.settled)
	}
	c.listeners = nil
	c.opts.logger.Debug("coordinator closed")
}
