package slider

import "math"

// Point is a pointer position in host units.
type Point struct {
	X float64
	Y float64
}

type gesturePhase int

const (
	gestureIdle gesturePhase = iota
	gestureArmed
	gestureDragging
)

type gesture struct {
	phase  gesturePhase
	start  Point
	origin Offset
	delta  Point
}

// PointerDown starts tracking a drag. Autoplay stops even when the press
// lands during a transition; the drag itself only arms when idle.
func (s *Slider) PointerDown(p Point) {
	s.dispatch(func() { s.pointerDown(p) })
}

// PointerMove feeds a pointer position. It reports whether the slider took
// the movement over, in which case the host should suppress its default
// handling of the event.
func (s *Slider) PointerMove(p Point) bool {
	var handled bool
	s.dispatch(func() { handled = s.pointerMove(p) })
	return handled
}

// PointerUp ends the drag, moving to a neighbour or settling back.
func (s *Slider) PointerUp() {
	s.dispatch(s.pointerUp)
}

// PointerCancel ends the drag the same way a release does.
func (s *Slider) PointerCancel() {
	s.dispatch(s.pointerUp)
}

func (s *Slider) pointerDown(p Point) {
	if !s.features.touch || s.gesture.phase != gestureIdle {
		return
	}
	s.stopAutoplay()
	if s.transitioning {
		return
	}
	s.host.Stop()
	s.gesture = gesture{
		phase:  gestureArmed,
		start:  p,
		origin: s.host.Offset(),
	}
}

func (s *Slider) pointerMove(p Point) bool {
	if s.gesture.phase == gestureIdle || s.transitioning {
		return false
	}
	s.gesture.delta = Point{X: p.X - s.gesture.start.X, Y: p.Y - s.gesture.start.Y}

	if s.gesture.phase == gestureArmed {
		tolerance := s.cfg.Touch.DirectionTolerance * (2 - s.scale())
		if math.Abs(s.axisDelta()) < tolerance {
			// Movement along the other axis is left to the host.
			return false
		}
		s.gesture.phase = gestureDragging
	}

	to := s.gesture.origin
	if s.cfg.Orientation == Vertical {
		to.Y += s.gesture.delta.Y
	} else {
		to.X += s.gesture.delta.X
	}
	s.setPosition(to, false, nil)
	return true
}

func (s *Slider) pointerUp() {
	phase := s.gesture.phase
	d := s.axisDelta()
	s.gesture = gesture{}

	switch phase {
	case gestureIdle:
		return
	case gestureArmed:
		s.moveBy(0)
		return
	}

	dist := math.Abs(d)
	if dist > 0 && dist >= s.cfg.Touch.Tolerance {
		// Dragging right reveals the previous item.
		if d > 0 {
			s.moveBy(-1)
		} else {
			s.moveBy(1)
		}
		return
	}
	s.moveBy(0)
}

func (s *Slider) axisDelta() float64 {
	if s.cfg.Orientation == Vertical {
		return s.gesture.delta.Y
	}
	return s.gesture.delta.X
}
