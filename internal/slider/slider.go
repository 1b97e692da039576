package slider

import "time"

// Options carries the collaborators of a slider that are not configuration.
type Options struct {
	// Scheduler runs autoplay advances and commit fallback timers. Required.
	Scheduler Scheduler
	// Index is the position of the slider within a group started together;
	// it staggers queued autoplay delays.
	Index int
	// ViewportScale reports the page zoom factor used by the gesture axis
	// tolerance. Nil means 1.
	ViewportScale func() float64
}

// features records which optional parts survived construction. A feature
// the configuration asks for is dropped when the items cannot support it.
type features struct {
	buttons  bool
	pager    bool
	wrap     bool
	autoplay bool
	touch    bool
	hardware bool
}

// Slider positions a strip of items inside a fixed display.
//
// A Slider is not safe for concurrent use. Every mutating call is queued on
// the instance and the queue drains on the calling goroutine, so calls made
// from OnUpdate or from a completion delivered synchronously by the host run
// after the current operation finishes.
type Slider struct {
	cfg   Config
	host  Host
	clock Scheduler
	scale func() float64
	index int

	itemCount int
	strip     Strip
	layout    Layout
	position  int

	features      features
	transitioning bool
	pending       *completion
	gesture       gesture
	autoplay      autoplay
	view          Presentation

	queue     []func()
	draining  bool
	destroyed bool
}

// New mounts a slider of itemCount items on host and renders the start
// position without animation.
func New(cfg Config, itemCount int, host Host, opts Options) (*Slider, error) {
	if host == nil {
		return nil, configError("host", "required")
	}
	if opts.Scheduler == nil {
		return nil, configError("scheduler", "required")
	}
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	if itemCount <= 0 {
		return nil, ErrNoItems
	}
	if cfg.RequireOverflow && itemCount <= cfg.ItemsToDisplay {
		return nil, ErrNotEnoughItems
	}
	if cfg.ItemsToDisplay > itemCount {
		cfg.ItemsToDisplay = itemCount
	}

	scale := opts.ViewportScale
	if scale == nil {
		scale = func() float64 { return 1 }
	}

	overflow := itemCount-cfg.ItemsToDisplay > 0
	s := &Slider{
		cfg:       cfg,
		host:      host,
		clock:     opts.Scheduler,
		scale:     scale,
		index:     opts.Index,
		itemCount: itemCount,
		position:  clamp(cfg.StartAt, 0, itemCount-cfg.ItemsToDisplay),
		features: features{
			buttons:  cfg.Buttons && overflow,
			pager:    cfg.Pager && overflow,
			wrap:     cfg.Wrap && overflow,
			autoplay: cfg.Autoplay.Enabled && overflow,
			touch:    cfg.Touch.Enabled,
			hardware: !cfg.DisableHardware && canTransform(host),
		},
	}
	s.strip = newStrip(itemCount, cfg.ItemsToDisplay, s.features.wrap)
	s.view.classes = cfg.Classes

	s.dispatch(func() {
		if s.features.autoplay {
			s.startAutoplay()
		}
		s.refreshSize()
	})
	return s, nil
}

func canTransform(h Host) bool {
	a, ok := h.(Accelerated)
	return ok && a.CanTransform()
}

// dispatch runs op after any operation already in progress on this slider.
func (s *Slider) dispatch(op func()) {
	s.queue = append(s.queue, op)
	if s.draining {
		return
	}
	s.draining = true
	defer func() { s.draining = false }()

	for len(s.queue) > 0 {
		if s.destroyed {
			s.queue = nil
			return
		}
		next := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		next()
	}
}

// Next moves forward by ItemsToScroll.
func (s *Slider) Next() {
	s.dispatch(func() { s.moveBy(1) })
}

// Previous moves backward by ItemsToScroll.
func (s *Slider) Previous() {
	s.dispatch(func() { s.moveBy(-1) })
}

// Page animates to the given start position. It is dropped while a
// transition is running.
func (s *Slider) Page(index int) {
	s.dispatch(func() { s.page(index) })
}

// CurrentPage returns the current start position.
func (s *Slider) CurrentPage() int {
	return s.Position()
}

// PressNext is Next triggered by the user; it stops autoplay for good.
func (s *Slider) PressNext() {
	s.dispatch(func() {
		s.moveBy(1)
		s.stopAutoplay()
	})
}

// PressPrevious is Previous triggered by the user; it stops autoplay.
func (s *Slider) PressPrevious() {
	s.dispatch(func() {
		s.moveBy(-1)
		s.stopAutoplay()
	})
}

// SelectPage is Page triggered from the pager; it stops autoplay.
func (s *Slider) SelectPage(index int) {
	s.dispatch(func() {
		s.page(index)
		s.stopAutoplay()
	})
}

func (s *Slider) page(index int) {
	if s.transitioning {
		return
	}
	s.applyPositionAt(clamp(index, 0, s.maxPosition()), true)
}

// Stop cancels autoplay. A move already committed still completes.
func (s *Slider) Stop() {
	s.dispatch(s.stopAutoplay)
}

// RefreshSize re-measures the host and re-applies the position without
// animation.
func (s *Slider) RefreshSize() {
	s.dispatch(s.refreshSize)
}

func (s *Slider) refreshSize() {
	s.layout = computeLayout(s.cfg, s.host.Bounds(), s.strip.Len())
	s.applyPosition(false)
}

// SetItemsToDisplay changes how many items share the display. Buttons, pager
// and autoplay follow the new overflow. It fails while wraparound is active
// since the clones are sized for the old count.
func (s *Slider) SetItemsToDisplay(n int) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if s.features.wrap {
		return configError("items to display", "cannot change while wraparound is enabled")
	}
	if n < 1 || n > s.itemCount {
		return configError("items to display", "must be between 1 and the item count")
	}
	s.dispatch(func() {
		s.cfg.ItemsToDisplay = n
		s.strip = newStrip(s.itemCount, n, false)
		s.updateFeatures()
		s.refreshSize()
	})
	return nil
}

// updateFeatures re-evaluates the features that need more items than the
// display shows. Wraparound keeps its construction-time state.
func (s *Slider) updateFeatures() {
	overflow := s.itemCount-s.cfg.ItemsToDisplay > 0
	s.features.buttons = s.cfg.Buttons && overflow
	s.features.pager = s.cfg.Pager && overflow
	s.features.autoplay = s.cfg.Autoplay.Enabled && overflow
	switch {
	case !s.features.autoplay:
		s.suspendAutoplay()
	case !s.autoplay.enabled && !s.autoplay.stopped:
		s.startAutoplay()
	}
}

// Destroy stops every timer, drops the pending completion and releases the
// host. Later calls are ignored.
func (s *Slider) Destroy() {
	s.dispatch(func() {
		s.stopAutoplay()
		s.pending.cancel()
		s.pending = nil
		s.transitioning = false
		s.gesture = gesture{}
		s.host.Stop()
		if t, ok := s.host.(Teardowner); ok {
			t.Teardown()
		}
		s.destroyed = true
	})
}

// Position returns the logical position, or -1 after Destroy.
func (s *Slider) Position() int {
	if s.destroyed {
		return -1
	}
	return s.position
}

// ItemCount returns the number of real items.
func (s *Slider) ItemCount() int { return s.itemCount }

// Transitioning reports whether an animated commit is outstanding.
func (s *Slider) Transitioning() bool { return s.transitioning }

// Dragging reports whether a gesture is active.
func (s *Slider) Dragging() bool { return s.gesture.phase != gestureIdle }

// Autoplaying reports whether autoplay is still scheduled.
func (s *Slider) Autoplaying() bool { return s.autoplay.enabled }

// Destroyed reports whether Destroy has run.
func (s *Slider) Destroyed() bool { return s.destroyed }

// Layout returns the current geometry.
func (s *Slider) Layout() Layout { return s.layout }

// Strip returns the slot plan hosts render.
func (s *Slider) Strip() Strip { return s.strip }

// Presentation returns the derived state last rendered.
func (s *Slider) Presentation() Presentation { return s.view.clone() }

// Options returns the effective configuration. Features that degraded at
// construction, and autoplay once stopped, are reported as disabled.
func (s *Slider) Options() Config {
	cfg := s.cfg
	cfg.Buttons = s.features.buttons
	cfg.Pager = s.features.pager
	cfg.Wrap = s.features.wrap
	cfg.Touch.Enabled = s.features.touch
	cfg.DisableHardware = !s.features.hardware
	cfg.Autoplay.Enabled = s.autoplay.enabled
	return cfg
}

// Duration is the configured commit duration.
func (s *Slider) Duration() time.Duration { return s.cfg.Duration }

func (s *Slider) maxPosition() int {
	return s.itemCount - s.cfg.ItemsToDisplay
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
