package ui

import (
	"math"
	"time"

	"github.com/five82/carousel/internal/slider"
)

// surface is the terminal host of one slider. Offsets are in cells. The
// strip is redrawn from the offset on every View, so moving it is only a
// matter of updating the number; animations advance on frame messages.
type surface struct {
	now     func() time.Time
	measure func() slider.Bounds

	offset slider.Offset
	anim   *animation
	view   slider.Presentation
	torn   bool
}

type animation struct {
	from, to slider.Offset
	start    time.Time
	d        time.Duration
	ease     func(float64) float64
	done     func()
}

func newSurface(now func() time.Time, measure func() slider.Bounds) *surface {
	return &surface{now: now, measure: measure}
}

func (s *surface) Offset() slider.Offset { return s.offset }

func (s *surface) SetOffset(to slider.Offset) {
	s.offset = to
}

func (s *surface) Animate(to slider.Offset, d time.Duration, done func()) {
	s.start(to, d, swing, done)
}

func (s *surface) Stop() {
	s.anim = nil
}

func (s *surface) Bounds() slider.Bounds {
	if s.measure == nil {
		return slider.Bounds{}
	}
	return s.measure()
}

// CanTransform reports true: a terminal has no compositor to fall back
// from, the transform path only differs in its easing curve.
func (s *surface) CanTransform() bool { return true }

func (s *surface) Transform(to slider.Offset, d time.Duration, ended func()) {
	s.start(to, d, easeOutCubic, ended)
}

func (s *surface) Present(p slider.Presentation) {
	s.view = p
}

func (s *surface) Teardown() {
	s.anim = nil
	s.offset = slider.Offset{}
	s.view = slider.Presentation{}
	s.torn = true
}

func (s *surface) start(to slider.Offset, d time.Duration, ease func(float64) float64, done func()) {
	if d <= 0 {
		s.anim = nil
		s.offset = to
		if done != nil {
			done()
		}
		return
	}
	s.anim = &animation{from: s.offset, to: to, start: s.now(), d: d, ease: ease, done: done}
}

func (s *surface) animating() bool { return s.anim != nil }

// step advances a running animation to now. The animation is cleared
// before its callback runs, so a callback that starts the next move is
// not overwritten.
func (s *surface) step(now time.Time) {
	a := s.anim
	if a == nil {
		return
	}
	p := float64(now.Sub(a.start)) / float64(a.d)
	if p < 1 {
		e := a.ease(math.Max(p, 0))
		s.offset = slider.Offset{
			X: a.from.X + (a.to.X-a.from.X)*e,
			Y: a.from.Y + (a.to.Y-a.from.Y)*e,
		}
		return
	}
	s.anim = nil
	s.offset = a.to
	if a.done != nil {
		a.done()
	}
}

func swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
