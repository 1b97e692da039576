package slidertest

import (
	"time"

	"github.com/five82/carousel/internal/slider"
)

// Host records everything a slider does to it.
//
// Margin animations arrive after their duration on Clock. Transforms jump
// straight to the target and keep their end notifications until End is
// called, so tests decide whether the notification or the fallback timer
// wins.
type Host struct {
	Clock    *Clock
	Size     slider.Bounds
	Hardware bool

	// Sets lists every immediate placement.
	Sets []slider.Offset
	// Animations and Transforms list every animated target.
	Animations []slider.Offset
	Transforms []slider.Offset
	Stops      int

	Presented []slider.Presentation
	TornDown  bool

	offset slider.Offset
	anim   slider.Timer
	ended  []func()
}

// NewHost returns a host measuring width by itemHeight on clock.
func NewHost(clock *Clock, width, itemHeight float64) *Host {
	return &Host{Clock: clock, Size: slider.Bounds{Width: width, ItemHeight: itemHeight}}
}

func (h *Host) Offset() slider.Offset { return h.offset }

func (h *Host) SetOffset(to slider.Offset) {
	h.offset = to
	h.Sets = append(h.Sets, to)
}

func (h *Host) Animate(to slider.Offset, d time.Duration, done func()) {
	h.Animations = append(h.Animations, to)
	h.anim = h.Clock.AfterFunc(d, func() {
		h.anim = nil
		h.offset = to
		done()
	})
}

func (h *Host) Stop() {
	h.Stops++
	if h.anim != nil {
		h.anim.Stop()
		h.anim = nil
	}
}

// Animating reports whether a margin animation is running.
func (h *Host) Animating() bool { return h.anim != nil }

func (h *Host) Bounds() slider.Bounds { return h.Size }

func (h *Host) CanTransform() bool { return h.Hardware }

func (h *Host) Transform(to slider.Offset, d time.Duration, ended func()) {
	h.offset = to
	h.Transforms = append(h.Transforms, to)
	h.ended = append(h.ended, ended)
}

// End delivers every held transition-end notification.
func (h *Host) End() {
	ended := h.ended
	h.ended = nil
	for _, f := range ended {
		f()
	}
}

func (h *Host) Present(p slider.Presentation) {
	h.Presented = append(h.Presented, p)
}

// Last returns the most recent Presentation, or the zero value.
func (h *Host) Last() slider.Presentation {
	if len(h.Presented) == 0 {
		return slider.Presentation{}
	}
	return h.Presented[len(h.Presented)-1]
}

func (h *Host) Teardown() { h.TornDown = true }
