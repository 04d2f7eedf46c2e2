package resource

import "errors"

// ErrUnknown is the cause recorded when a failure is constructed without one.
var ErrUnknown = errors.New("resource: unknown failure")

// State is the tag of a Resource.
type State int

const (
	StateLoading State = iota // fetch in progress, no payload
	StateSuccess              // data loaded
	StateError                // fetch failed
)

// String returns a lower-case name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource is an immutable snapshot of one fetch outcome. The zero value is
// Loading. Fields are unexported so the payload can not be read without
// going through the tag.
type Resource[T any] struct {
	state State
	data  T
	err   error
}

// Visitor receives exactly one call from Accept.
type Visitor[T any] interface {
	Loading()
	Success(data T)
	Error(err error)
}

// Loading returns a resource with no payload.
func Loading[T any]() Resource[T] {
	return Resource[T]{state: StateLoading}
}

// Success returns a resource holding data.
func Success[T any](data T) Resource[T] {
	return Resource[T]{state: StateSuccess, data: data}
}

// Failure returns a resource in the Error state. A nil cause is replaced by
// ErrUnknown so the Error tag always carries one.
func Failure[T any](err error) Resource[T] {
	if err == nil {
		err = ErrUnknown
	}
	return Resource[T]{state: StateError, err: err}
}

// State returns the active tag.
func (r Resource[T]) State() State {
	return r.state
}

// IsLoading reports whether the fetch has not settled yet.
func (r Resource[T]) IsLoading() bool { return r.state == StateLoading }

// IsSuccess reports whether data is available.
func (r Resource[T]) IsSuccess() bool { return r.state == StateSuccess }

// IsError reports whether the fetch failed.
func (r Resource[T]) IsError() bool { return r.state == StateError }

// Value returns the payload and true only in the Success state.
func (r Resource[T]) Value() (T, bool) {
	if r.state != StateSuccess {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Err returns the cause and true only in the Error state.
func (r Resource[T]) Err() (error, bool) {
	if r.state != StateError {
		return nil, false
	}
	return r.err, true
}

// Match calls exactly one of the handlers according to the tag. Every
// handler is required.
func (r Resource[T]) Match(onLoading func(), onSuccess func(T), onError func(error)) {
	if onLoading == nil || onSuccess == nil || onError == nil {
		panic("resource: Match requires a handler for every state")
	}
	switch r.state {
	case StateSuccess:
		onSuccess(r.data)
	case StateError:
		onError(r.err)
	default:
		onLoading()
	}
}

// Accept dispatches to the visitor method matching the tag.
func (r Resource[T]) Accept(v Visitor[T]) {
	r.Match(v.Loading, v.Success, v.Error)
}

// Fold maps the resource to a single value, one function per tag.
func Fold[T, R any](r Resource[T], onLoading func() R, onSuccess func(T) R, onError func(error) R) R {
	var out R
	r.Match(
		func() { out = onLoading() },
		func(data T) { out = onSuccess(data) },
		func(err error) { out = onError(err) },
	)
	return out
}

// Map transforms the Success payload and leaves the other tags untouched.
func Map[T, R any](r Resource[T], fn func(T) R) Resource[R] {
	return Fold(r,
		Loading[R],
		func(data T) Resource[R] { return Success(fn(data)) },
		Failure[R],
	)
}
