package slider

import "time"

type autoplay struct {
	enabled bool
	stopped bool // stopped by the user or Destroy
	timer   Timer
}

// startAutoplay schedules the first advance. Unqueued sliders all wait one
// delay past the pause; queued ones wait index delays.
func (s *Slider) startAutoplay() {
	steps := 1
	if s.cfg.Autoplay.DelayQueued {
		steps = s.index
	}
	s.autoplay.enabled = true
	s.scheduleAutoplay(s.cfg.Autoplay.Pause + time.Duration(steps)*s.cfg.Autoplay.Delay)
}

func (s *Slider) scheduleAutoplay(d time.Duration) {
	s.autoplay.timer = s.clock.AfterFunc(d, func() {
		s.dispatch(s.autoplayTick)
	})
}

func (s *Slider) autoplayTick() {
	s.autoplay.timer = nil
	if !s.autoplay.enabled {
		return
	}
	s.moveBy(int(s.cfg.Autoplay.Direction))
	s.scheduleAutoplay(s.cfg.Autoplay.Pause)
}

// stopAutoplay is idempotent and never resumes.
func (s *Slider) stopAutoplay() {
	s.autoplay.stopped = true
	s.suspendAutoplay()
}

// suspendAutoplay cancels the pending advance. Autoplay may start again
// once the items overflow the display.
func (s *Slider) suspendAutoplay() {
	s.autoplay.enabled = false
	if s.autoplay.timer != nil {
		s.autoplay.timer.Stop()
		s.autoplay.timer = nil
	}
}
