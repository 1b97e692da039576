package slider_test

import (
	"testing"

	"github.com/five82/carousel/internal/slider"
	"github.com/five82/carousel/internal/slider/slidertest"
)

func touchConfig() slider.Config {
	cfg := slider.DefaultConfig()
	cfg.StartAt = 1
	cfg.Touch = slider.TouchConfig{Enabled: true, Tolerance: 20, DirectionTolerance: 10}
	return cfg
}

func TestDragPastToleranceRevealsPrevious(t *testing.T) {
	cfg := touchConfig()
	s, host, clock := mount(t, cfg, 3, 100)
	if got := host.Offset(); got.X != -100 {
		t.Fatalf("start offset = %v, want -100", got)
	}

	s.PointerDown(slider.Point{X: 50, Y: 10})
	if !s.PointerMove(slider.Point{X: 80, Y: 10}) {
		t.Fatalf("move past the axis tolerance should be taken over")
	}
	if got := lastOf(host.Sets); got.X != -70 {
		t.Fatalf("live offset = %v, want -70", got)
	}
	if s.Transitioning() {
		t.Fatalf("live drag commits must not start a transition")
	}

	s.PointerUp()
	if got := s.Position(); got != 0 {
		t.Fatalf("position = %d, want 0", got)
	}
	if got := lastOf(host.Animations); got.X != 0 {
		t.Fatalf("animated to %v, want 0", got)
	}
	clock.Advance(cfg.Duration)
	if s.Dragging() || s.Transitioning() {
		t.Fatalf("gesture did not settle")
	}
}

func TestDragLeftRevealsNext(t *testing.T) {
	cfg := touchConfig()
	s, _, _ := mount(t, cfg, 3, 100)

	s.PointerDown(slider.Point{X: 50})
	s.PointerMove(slider.Point{X: 25})
	s.PointerUp()
	if got := s.Position(); got != 2 {
		t.Fatalf("position = %d, want 2", got)
	}
}

func TestShortDragSettlesBack(t *testing.T) {
	cfg := touchConfig()
	s, host, clock := mount(t, cfg, 3, 100)

	s.PointerDown(slider.Point{X: 50})
	s.PointerMove(slider.Point{X: 62})
	s.PointerUp()
	if got := s.Position(); got != 1 {
		t.Fatalf("position = %d, want 1", got)
	}
	if got := lastOf(host.Animations); got.X != -100 {
		t.Fatalf("settled to %v, want -100", got)
	}
	clock.Advance(cfg.Duration)
	if got := host.Offset(); got.X != -100 {
		t.Fatalf("offset = %v, want -100", got)
	}
}

func TestCrossAxisMovementIsLeftToHost(t *testing.T) {
	cfg := touchConfig()
	s, host, _ := mount(t, cfg, 3, 100)
	sets := len(host.Sets)

	s.PointerDown(slider.Point{X: 50, Y: 10})
	if s.PointerMove(slider.Point{X: 52, Y: 60}) {
		t.Fatalf("vertical movement on a horizontal slider was taken over")
	}
	if !s.Dragging() {
		t.Fatalf("gesture should stay armed")
	}
	s.PointerUp()
	if got := s.Position(); got != 1 {
		t.Fatalf("position = %d, want 1", got)
	}
	if got := len(host.Sets); got != sets {
		t.Fatalf("an armed gesture moved the strip")
	}
}

func TestDirectionToleranceFollowsViewportScale(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  bool
	}{
		{name: "unscaled", scale: 1, want: false},
		{name: "zoomed", scale: 1.5, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &slidertest.Clock{}
			host := slidertest.NewHost(clock, 100, 50)
			s, err := slider.New(touchConfig(), 3, host, slider.Options{
				Scheduler:     clock,
				ViewportScale: func() float64 { return tt.scale },
			})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			s.PointerDown(slider.Point{X: 50})
			if got := s.PointerMove(slider.Point{X: 56}); got != tt.want {
				t.Fatalf("taken over = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPressDuringTransitionOnlyStopsAutoplay(t *testing.T) {
	cfg := touchConfig()
	cfg.Autoplay.Enabled = true
	s, _, _ := mount(t, cfg, 3, 100)

	s.Next()
	s.PointerDown(slider.Point{X: 50})
	if s.Autoplaying() {
		t.Fatalf("press should stop autoplay")
	}
	if s.Dragging() {
		t.Fatalf("press during a transition should not arm")
	}
	if s.PointerMove(slider.Point{X: 90}) {
		t.Fatalf("move without an armed gesture was taken over")
	}
}

func TestTouchDisabledIgnoresPointer(t *testing.T) {
	cfg := slider.DefaultConfig()
	cfg.Autoplay.Enabled = true
	s, _, _ := mount(t, cfg, 3, 100)

	s.PointerDown(slider.Point{X: 50})
	if s.Dragging() || !s.Autoplaying() {
		t.Fatalf("pointer handled with touch disabled")
	}
}

func TestVerticalDragUsesYAxis(t *testing.T) {
	cfg := touchConfig()
	cfg.Orientation = slider.Vertical
	s, host, _ := mount(t, cfg, 3, 100)

	s.PointerDown(slider.Point{X: 10, Y: 40})
	if !s.PointerMove(slider.Point{X: 10, Y: 10}) {
		t.Fatalf("vertical drag was not taken over")
	}
	if got := lastOf(host.Sets); got.Y != -80 || got.X != 0 {
		t.Fatalf("live offset = %v, want {0 -80}", got)
	}
	s.PointerCancel()
	if got := s.Position(); got != 2 {
		t.Fatalf("position = %d, want 2", got)
	}
}
