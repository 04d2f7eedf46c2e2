package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// swipeDetector classifies a touch from its start and end positions
type swipeDetector struct {
	threshold float32
	start     fyne.Position
	tracking  bool
}

func (d *swipeDetector) down(pos fyne.Position) {
	d.start = pos
	d.tracking = true
}

func (d *swipeDetector) cancel() {
	d.tracking = false
}

func (d *swipeDetector) up(pos fyne.Position) GestureType {
	if !d.tracking {
		return GestureNone
	}
	d.tracking = false

	dx := pos.X - d.start.X
	dy := pos.Y - d.start.Y
	absDx, absDy := abs32(dx), abs32(dy)
	if absDx < d.threshold && absDy < d.threshold {
		return GestureNone
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// PullToRefresh wraps content and calls onRefresh when the user swipes down.
// Refreshes closer together than RefreshCooldown are ignored.
type PullToRefresh struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onRefresh func()
	detector  swipeDetector
	cooldown  time.Duration
	last      time.Time
	now       func() time.Time
}

var _ mobile.Touchable = (*PullToRefresh)(nil)

// NewPullToRefresh creates a pull-to-refresh wrapper
func NewPullToRefresh(content fyne.CanvasObject, onRefresh func()) *PullToRefresh {
	p := &PullToRefresh{
		content:   content,
		onRefresh: onRefresh,
		detector:  swipeDetector{threshold: SwipeThreshold},
		cooldown:  RefreshCooldown,
		now:       time.Now,
	}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer creates the widget renderer
func (p *PullToRefresh) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(p.content))
}

// TouchDown handles touch down events
func (p *PullToRefresh) TouchDown(event *mobile.TouchEvent) {
	p.detector.down(event.Position)
}

// TouchUp handles touch up events
func (p *PullToRefresh) TouchUp(event *mobile.TouchEvent) {
	if p.detector.up(event.Position) != GestureSwipeDown {
		return
	}
	p.trigger()
}

// TouchCancel handles touch cancel events
func (p *PullToRefresh) TouchCancel(*mobile.TouchEvent) {
	p.detector.cancel()
}

func (p *PullToRefresh) trigger() {
	if p.onRefresh == nil {
		return
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.cooldown {
		return
	}
	p.last = now
	p.onRefresh()
}
