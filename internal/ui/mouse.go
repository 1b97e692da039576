package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/slider"
)

// handleMouse routes mouse events to the panel under the pointer. A drag
// stays with the panel it started on until the button is released.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pt := slider.Point{X: float64(msg.X), Y: float64(msg.Y)}

	if m.drag >= 0 && m.drag < len(m.panels) {
		s := m.panels[m.drag].slider
		switch msg.Action {
		case tea.MouseActionMotion:
			if s != nil {
				s.PointerMove(pt)
			}
			return m, nil
		case tea.MouseActionRelease:
			if s != nil {
				s.PointerUp()
			}
			m.drag = -1
			return m, nil
		}
	}

	idx := m.panelAt(msg.X, msg.Y)
	if idx < 0 {
		return m, nil
	}
	p := m.panels[idx]
	if p.slider == nil {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.slider.PressPrevious()
		return m, nil
	case tea.MouseButtonWheelDown:
		p.slider.PressNext()
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.focus = idx

	r := p.rect
	switch {
	case msg.Y >= r.bodyTop() && msg.Y < r.bodyTop()+r.bodyRows():
		p.slider.PointerDown(pt)
		m.drag = idx
	case msg.Y == r.controlsRow():
		z, ok := hitZone(controlZones(p.surface.view, r.innerWidth()), msg.X-r.innerX())
		if !ok || z.disabled {
			return m, nil
		}
		switch z.kind {
		case zonePrev:
			p.slider.PressPrevious()
		case zoneNext:
			p.slider.PressNext()
		case zonePage:
			p.slider.SelectPage(z.page)
		}
	}
	return m, nil
}

// panelAt returns the index of the panel containing the cell, or -1.
func (m Model) panelAt(x, y int) int {
	for i, p := range m.panels {
		if p.rect.contains(x, y) {
			return i
		}
	}
	return -1
}
