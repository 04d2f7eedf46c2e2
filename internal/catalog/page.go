package catalog

import (
	"math/rand"
	"sync"
	"time"
)

// MinPage is the first page the movie API accepts
const MinPage = 1

// PagePolicy chooses the page requested by each fetch
type PagePolicy interface {
	Next() int
}

// FixedPage always requests the same page
type FixedPage int

// Next returns the fixed page, clamped to MinPage
func (p FixedPage) Next() int {
	if int(p) < MinPage {
		return MinPage
	}
	return int(p)
}

type randomPage struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	min, max int
}

// RandomPage draws a page uniformly from [min, max] on every call. It is a
// presentation-variety device: consecutive refreshes show different movies.
// A nil source is seeded from the clock.
func RandomPage(min, max int, src rand.Source) PagePolicy {
	if min < MinPage {
		min = MinPage
	}
	if max < min {
		max = min
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &randomPage{rnd: rand.New(src), min: min, max: max}
}

func (p *randomPage) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.min + p.rnd.Intn(p.max-p.min+1)
}
