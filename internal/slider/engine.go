package slider

// moveBy advances by delta pages. Requests arriving while a transition runs
// are dropped, not queued.
func (s *Slider) moveBy(delta int) {
	if s.transitioning {
		return
	}
	s.position += delta * s.cfg.ItemsToScroll
	s.applyPosition(true)
}

func (s *Slider) applyPositionAt(target int, animated bool) {
	s.position = target
	s.applyPosition(animated)
}

// applyPosition commits the offset for the current position and re-renders
// the derived state. Without wraparound the position is clamped first; with
// wraparound it may sit in the clone region until the commit completes.
func (s *Slider) applyPosition(animated bool) {
	if !s.features.wrap {
		s.position = clamp(s.position, 0, s.maxPosition())
	}

	to := offsetFor(s.cfg, s.layout, s.position, s.features.wrap)
	s.setPosition(to, animated, s.positionApplied)

	s.view.Buttons = presentButtons(s.features.buttons, s.position, s.itemCount, s.cfg.ItemsToDisplay, s.features.wrap)
	s.view.Site = presentSite(s.cfg.SiteClasses, s.cfg.Classes.Site, s.position)
	s.view.Items, s.view.Pre, s.view.Post = presentItems(s.cfg.ItemClasses, s.position, s.itemCount,
		s.cfg.ItemsToDisplay, s.cfg.ItemsToScroll, s.features.wrap)
	// The pager follows the commit so the marker does not move before the
	// strip lands.
	if !animated {
		s.view.Pager = presentPager(s.features.pager, s.position, s.itemCount, s.cfg.ItemsToDisplay)
	}
	s.present()

	if s.cfg.OnUpdate != nil {
		s.cfg.OnUpdate(s)
	}
}

// positionApplied runs once the commit for a position has landed.
func (s *Slider) positionApplied() {
	if s.features.wrap {
		switch {
		case s.position < -(s.cfg.ItemsToDisplay - s.cfg.ItemsToScroll):
			s.applyPositionAt(s.maxPosition(), false)
		case s.position >= s.itemCount:
			s.applyPositionAt(0, false)
		}
	}
	s.view.Pager = presentPager(s.features.pager, s.position, s.itemCount, s.cfg.ItemsToDisplay)
	s.present()
}

func (s *Slider) present() {
	if p, ok := s.host.(Presenter); ok {
		p.Present(s.view.clone())
	}
}
