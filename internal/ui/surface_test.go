package ui

import (
	"math"
	"testing"
	"time"

	"github.com/five82/carousel/internal/slider"
)

type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeNow() *fakeNow {
	return &fakeNow{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestSurface_AnimateLandsOnce(t *testing.T) {
	clock := newFakeNow()
	s := newSurface(clock.now, nil)

	calls := 0
	s.Animate(slider.Offset{X: -100}, 100*time.Millisecond, func() { calls++ })
	if !s.animating() {
		t.Fatal("surface should be animating")
	}

	clock.advance(50 * time.Millisecond)
	s.step(clock.now())
	if got := s.Offset().X; math.Abs(got+50) > 1e-9 {
		t.Fatalf("offset at half time = %v, want -50 (swing midpoint)", got)
	}
	if calls != 0 {
		t.Fatal("done called before the animation ended")
	}

	clock.advance(60 * time.Millisecond)
	s.step(clock.now())
	s.step(clock.now())
	if got := s.Offset().X; got != -100 {
		t.Fatalf("offset after end = %v, want -100", got)
	}
	if calls != 1 {
		t.Fatalf("done calls = %d, want 1", calls)
	}
	if s.animating() {
		t.Fatal("surface still animating after landing")
	}
}

func TestSurface_StopHaltsInPlace(t *testing.T) {
	clock := newFakeNow()
	s := newSurface(clock.now, nil)

	called := false
	s.Transform(slider.Offset{Y: -40}, 200*time.Millisecond, func() { called = true })
	clock.advance(100 * time.Millisecond)
	s.step(clock.now())
	mid := s.Offset().Y
	if mid >= 0 || mid <= -40 {
		t.Fatalf("offset mid-way = %v, want between -40 and 0", mid)
	}

	s.Stop()
	clock.advance(time.Second)
	s.step(clock.now())
	if s.Offset().Y != mid || called {
		t.Fatalf("stopped surface moved to %v (called=%v)", s.Offset().Y, called)
	}
}

func TestSurface_ZeroDurationIsImmediate(t *testing.T) {
	s := newSurface(newFakeNow().now, nil)
	called := false
	s.Animate(slider.Offset{X: -30}, 0, func() { called = true })
	if !called || s.Offset().X != -30 || s.animating() {
		t.Fatalf("zero duration: called=%v offset=%v animating=%v", called, s.Offset(), s.animating())
	}
}

func TestSurface_DoneMayStartNextAnimation(t *testing.T) {
	clock := newFakeNow()
	s := newSurface(clock.now, nil)

	s.Animate(slider.Offset{X: -10}, 10*time.Millisecond, func() {
		s.Animate(slider.Offset{X: -20}, 10*time.Millisecond, nil)
	})
	clock.advance(20 * time.Millisecond)
	s.step(clock.now())
	if !s.animating() {
		t.Fatal("animation started from done was cleared")
	}
}

func TestSurface_Teardown(t *testing.T) {
	s := newSurface(newFakeNow().now, nil)
	s.SetOffset(slider.Offset{X: -5})
	s.Teardown()
	if s.Offset() != (slider.Offset{}) || !s.torn {
		t.Fatalf("teardown left offset %v torn=%v", s.Offset(), s.torn)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]func(float64) float64{
		"swing":        swing,
		"easeOutCubic": easeOutCubic,
	} {
		if got := ease(0); math.Abs(got) > 1e-9 {
			t.Fatalf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); math.Abs(got-1) > 1e-9 {
			t.Fatalf("%s(1) = %v, want 1", name, got)
		}
	}
}
