package catalog

import (
	"sync"

	"github.com/fabler/jetflix/internal/model"
)

// Selection holds the movie the user last tapped. The detail sheet listens
// to it.
type Selection struct {
	mu        sync.RWMutex
	movie     model.Movie
	selected  bool
	nextID    int
	listeners []selectionListener
}

type selectionListener struct {
	id int
	fn func(model.Movie, bool)
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Set selects movie and notifies listeners
func (s *Selection) Set(movie model.Movie) {
	s.mu.Lock()
	s.movie = movie
	s.selected = true
	listeners := append([]selectionListener{}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(movie, true)
	}
}

// Clear drops the selection and notifies listeners
func (s *Selection) Clear() {
	s.mu.Lock()
	if !s.selected {
		s.mu.Unlock()
		return
	}
	s.movie = model.Movie{}
	s.selected = false
	listeners := append([]selectionListener{}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(model.Movie{}, false)
	}
}

// Current returns the selected movie, if any
func (s *Selection) Current() (model.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movie, s.selected
}

// Subscribe registers fn for selection changes. The returned func
// unregisters fn; calling it twice is a no-op.
func (s *Selection) Subscribe(fn func(movie model.Movie, selected bool)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, selectionListener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
