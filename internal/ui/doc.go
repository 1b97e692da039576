// Package ui provides the terminal user interface for carousel.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Every configured slider becomes a panel:
// a bordered box holding the deck title, the visible window of the slide
// strip and a row of controls. Panels are stacked vertically and share the
// window height.
//
// # Package Structure
//
//   - app.go: Model, message handling and the Run function
//   - panel.go: one slider and its deck, mounting and measuring
//   - surface.go: the slider host; offsets in cells, frame driven easing
//   - scheduler.go: slider timers delivered as Bubble Tea messages
//   - render.go: panel, card, strip and control rendering
//   - mouse.go: drag gestures, wheel and control clicks
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go, style_helpers.go, layout.go: colors, styles and geometry
//
// # Event Flow
//
//  1. New mounts a slider per deck found in the state.Store
//  2. Slider timers (autoplay, commit fallbacks) become tea.Tick commands
//     through the scheduler and come back as timerMsg
//  3. While a strip animates, frameMsg advances the surface offsets
//  4. A periodic tick fetches the store snapshot; panels whose deck version
//     changed are remounted at the position they had reached
//
// All slider calls happen inside Update, so the engine is never touched
// from two goroutines.
package ui
