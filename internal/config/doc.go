// Package config handles loading and parsing the carousel configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/carousel/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults (no sliders)
//  4. If the file exists but fields are missing, use per-field defaults
//
// Decks named on the command line are appended with AddDecks and get the
// default slider options.
//
// # TOML Format
//
//	watch = true
//
//	[[slider]]
//	deck = "~/slides/intro.txt"
//	orientation = "horizontal"
//	items_to_display = 1
//	items_to_scroll = 1
//	duration_ms = 350
//	wrap = true
//
//	[slider.autoplay]
//	enabled = true
//	pause_ms = 3000
//	delay_ms = 500
//	queued = false
//	direction = "forward"
//
//	[slider.touch]
//	enabled = true
//	tolerance = 4
//	direction_tolerance = 2
//
// Only deck is required. Buttons, pager, item and site classes, the
// transform path and touch are on unless switched off; wraparound and
// autoplay are off unless switched on. Touch distances are terminal cells.
//
// # Conversion
//
// SliderSpec.SliderConfig maps a spec onto slider.Config. Names that have no
// engine equivalent (an unknown orientation or direction) fail here; numeric
// ranges are checked again by slider.New, which reports a
// *slider.ConfigurationError.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML syntax errors
//   - A [[slider]] table without a deck
package config
