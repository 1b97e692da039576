package slider_test

import (
	"testing"
	"time"

	"github.com/five82/carousel/internal/slider"
	"github.com/five82/carousel/internal/slider/slidertest"
)

func autoplayConfig() slider.Config {
	cfg := slider.DefaultConfig()
	cfg.Autoplay = slider.AutoplayConfig{
		Enabled: true,
		Pause:   time.Second,
		Delay:   500 * time.Millisecond,
	}
	return cfg
}

func TestAutoplayCadence(t *testing.T) {
	cfg := autoplayConfig()
	s, _, clock := mount(t, cfg, 4, 100)

	clock.Advance(1499 * time.Millisecond)
	if got := s.Position(); got != 0 {
		t.Fatalf("advanced early to %d", got)
	}
	clock.Advance(time.Millisecond)
	if got := s.Position(); got != 1 {
		t.Fatalf("position = %d, want 1 after pause plus delay", got)
	}

	clock.Advance(time.Second)
	if got := s.Position(); got != 2 {
		t.Fatalf("position = %d, want 2 one pause later", got)
	}
	if got := clock.Pending(); got != 2 {
		// The landing animation and the next advance.
		t.Fatalf("pending timers = %d, want 2", got)
	}
}

func TestStopPreventsScheduledAdvance(t *testing.T) {
	cfg := autoplayConfig()
	s, host, clock := mount(t, cfg, 4, 100)

	clock.Advance(time.Second)
	s.Stop()
	s.Stop()
	clock.Advance(5 * time.Second)
	if got := s.Position(); got != 0 {
		t.Fatalf("position = %d after Stop, want 0", got)
	}
	if len(host.Animations) != 0 {
		t.Fatalf("an advance fired after Stop")
	}
	if s.Options().Autoplay.Enabled {
		t.Fatalf("options still report autoplay")
	}
}

func TestStopLetsCommittedMoveFinish(t *testing.T) {
	cfg := autoplayConfig()
	s, host, clock := mount(t, cfg, 4, 100)

	clock.Advance(1500 * time.Millisecond)
	s.Stop()
	clock.Advance(cfg.Duration)
	if got := host.Offset(); got.X != -100 {
		t.Fatalf("offset = %v, want the committed move to land at -100", got)
	}
}

func TestAutoplayBackward(t *testing.T) {
	cfg := autoplayConfig()
	cfg.Wrap = true
	cfg.Autoplay.Direction = slider.Backward
	s, _, clock := mount(t, cfg, 4, 100)

	clock.Advance(1500*time.Millisecond + cfg.Duration)
	if got := s.Position(); got != 3 {
		t.Fatalf("position = %d, want 3 after wrapping backward", got)
	}
}

func TestQueuedDelayStaggersByIndex(t *testing.T) {
	cfg := autoplayConfig()
	cfg.Autoplay.DelayQueued = true

	clock := &slidertest.Clock{}
	var sliders []*slider.Slider
	for i := 0; i < 3; i++ {
		host := slidertest.NewHost(clock, 100, 50)
		s, err := slider.New(cfg, 4, host, slider.Options{Scheduler: clock, Index: i})
		if err != nil {
			t.Fatalf("New %d: %v", i, err)
		}
		sliders = append(sliders, s)
	}

	want := []struct {
		at        time.Duration
		positions []int
	}{
		{at: 1000 * time.Millisecond, positions: []int{1, 0, 0}},
		{at: 1500 * time.Millisecond, positions: []int{1, 1, 0}},
		{at: 2000 * time.Millisecond, positions: []int{2, 1, 1}},
	}
	for _, step := range want {
		clock.Advance(step.at - clock.Now())
		for i, s := range sliders {
			if got := s.Position(); got != step.positions[i] {
				t.Fatalf("at %v slider %d position = %d, want %d", step.at, i, got, step.positions[i])
			}
		}
	}
}

func TestPressStopsAutoplay(t *testing.T) {
	tests := []struct {
		name  string
		press func(*slider.Slider)
	}{
		{name: "next", press: (*slider.Slider).PressNext},
		{name: "previous", press: (*slider.Slider).PressPrevious},
		{name: "page", press: func(s *slider.Slider) { s.SelectPage(2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, clock := mount(t, autoplayConfig(), 4, 100)
			tt.press(s)
			if s.Autoplaying() {
				t.Fatalf("autoplay still running")
			}
			before := s.Position()
			clock.Advance(10 * time.Second)
			if got := s.Position(); got != before {
				t.Fatalf("position moved from %d to %d", before, got)
			}
		})
	}
}
