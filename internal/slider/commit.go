package slider

import "math"

// completion is the single-shot end of one commit. The transform path arms
// it from two sources, the host notification and a fallback timer; the
// first to fire wins and stops the other.
type completion struct {
	fired     bool
	cancelled bool
	timer     Timer
	fn        func()
}

func (c *completion) fire() {
	if c == nil || c.fired || c.cancelled {
		return
	}
	c.fired = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.fn()
}

// cancel drops the completion, including a run already queued.
func (c *completion) cancel() {
	if c == nil {
		return
	}
	c.cancelled = true
	if c.timer != nil {
		c.timer.Stop()
	}
}

// setPosition commits an offset to the host. done runs after the commit
// lands; for non-animated commits that is right after the current
// operation. A commit supersedes any still outstanding.
func (s *Slider) setPosition(to Offset, animated bool, done func()) {
	cur := s.host.Offset()
	if math.Floor(cur.X) == math.Floor(to.X) && math.Floor(cur.Y) == math.Floor(to.Y) {
		return
	}

	s.pending.cancel()
	s.pending = nil

	c := &completion{}
	c.fn = func() {
		s.dispatch(func() {
			if c.cancelled {
				return
			}
			if s.pending == c {
				s.pending = nil
			}
			s.transitioning = false
			if done != nil {
				done()
			}
		})
	}

	if !animated {
		s.host.Stop()
		s.host.SetOffset(to)
		c.fire()
		return
	}

	s.transitioning = true
	s.pending = c
	d := s.cfg.Duration

	if s.features.hardware {
		c.timer = s.clock.AfterFunc(d, c.fire)
		s.host.(Accelerated).Transform(to, d, c.fire)
		return
	}
	s.host.Animate(to, d, c.fire)
}
