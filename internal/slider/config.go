package slider

import (
	"time"
)

// Orientation selects the axis items slide along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is the sign of an autoplay advance.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// AutoplayConfig controls the repeating advance.
type AutoplayConfig struct {
	Enabled bool
	// Pause is the time between two advances.
	Pause time.Duration
	// Delay offsets the first advance. With DelayQueued the delay is
	// multiplied by the instance index so a group of sliders staggers.
	Delay       time.Duration
	DelayQueued bool
	Direction   Direction
}

// TouchConfig controls drag gestures. Distances are in host units
// (pixels for a browser-like host, cells for the terminal UI).
type TouchConfig struct {
	Enabled bool
	// Tolerance is the drag distance that commits a move on release.
	Tolerance float64
	// DirectionTolerance is the movement along the active axis required
	// before a drag takes over from the host's default handling.
	DirectionTolerance float64
}

// Classes holds the names the presenters hand out.
type Classes struct {
	Previous       string
	Current        string
	Next           string
	Clone          string
	ButtonDisabled string
	PagerSelected  string
	Site           string
}

// Config is the immutable configuration of one slider. Start from
// DefaultConfig and override fields; New validates the result.
type Config struct {
	Orientation    Orientation
	ItemsToDisplay int
	ItemsToScroll  int
	Duration       time.Duration

	// Width and Height override the measured container size when non-zero.
	Width  float64
	Height float64

	// StartAt is the initial logical position.
	StartAt int
	// RequireOverflow makes New fail when the items fit the display.
	RequireOverflow bool

	Buttons     bool
	Pager       bool
	SiteClasses bool
	ItemClasses bool
	Wrap        bool

	// DisableHardware forces the margin animation path even when the host
	// can run transforms.
	DisableHardware bool

	Autoplay AutoplayConfig
	Touch    TouchConfig
	Classes  Classes

	// OnUpdate runs after every applied position change.
	OnUpdate func(*Slider)
}

const (
	defaultDuration           = 500 * time.Millisecond
	defaultAutoplayPause      = 3000 * time.Millisecond
	defaultAutoplayDelay      = 500 * time.Millisecond
	defaultTouchTolerance     = 20
	defaultDirectionTolerance = 45
)

// DefaultClasses returns the stock class names.
func DefaultClasses() Classes {
	return Classes{
		Previous:       "previous",
		Current:        "current",
		Next:           "next",
		Clone:          "clone",
		ButtonDisabled: "disabled",
		PagerSelected:  "selected",
		Site:           "page",
	}
}

// DefaultConfig returns a horizontal single-item slider with every optional
// feature switched off.
func DefaultConfig() Config {
	return Config{
		Orientation:    Horizontal,
		ItemsToDisplay: 1,
		ItemsToScroll:  1,
		Duration:       defaultDuration,
		Autoplay: AutoplayConfig{
			Pause:     defaultAutoplayPause,
			Delay:     defaultAutoplayDelay,
			Direction: Forward,
		},
		Touch: TouchConfig{
			Tolerance:          defaultTouchTolerance,
			DirectionTolerance: defaultDirectionTolerance,
		},
		Classes: DefaultClasses(),
	}
}

// validate checks each field and fills the zero values that have no valid
// meaning of their own. A zero Duration stays zero: it means instant commits.
func (c Config) validate() (Config, error) {
	switch c.Orientation {
	case Horizontal, Vertical:
	default:
		return c, configError("orientation", "must be horizontal or vertical")
	}

	switch {
	case c.ItemsToDisplay < 0:
		return c, configError("items to display", "must not be negative")
	case c.ItemsToDisplay == 0:
		c.ItemsToDisplay = 1
	}
	switch {
	case c.ItemsToScroll < 0:
		return c, configError("items to scroll", "must not be negative")
	case c.ItemsToScroll == 0:
		c.ItemsToScroll = 1
	}

	if c.Duration < 0 {
		return c, configError("duration", "must not be negative")
	}
	if c.Width < 0 || c.Height < 0 {
		return c, configError("size", "width and height must not be negative")
	}
	if c.StartAt < 0 {
		return c, configError("start", "must not be negative")
	}

	if c.Autoplay.Pause < 0 || c.Autoplay.Delay < 0 {
		return c, configError("autoplay", "pause and delay must not be negative")
	}
	if c.Autoplay.Pause == 0 {
		c.Autoplay.Pause = defaultAutoplayPause
	}
	switch c.Autoplay.Direction {
	case 0:
		c.Autoplay.Direction = Forward
	case Forward, Backward:
	default:
		return c, configError("autoplay direction", "must be forward or backward")
	}

	if c.Touch.Tolerance < 0 || c.Touch.DirectionTolerance < 0 {
		return c, configError("touch", "tolerances must not be negative")
	}

	c.Classes = c.Classes.withDefaults()
	return c, nil
}

func (c Classes) withDefaults() Classes {
	d := DefaultClasses()
	if c.Previous == "" {
		c.Previous = d.Previous
	}
	if c.Current == "" {
		c.Current = d.Current
	}
	if c.Next == "" {
		c.Next = d.Next
	}
	if c.Clone == "" {
		c.Clone = d.Clone
	}
	if c.ButtonDisabled == "" {
		c.ButtonDisabled = d.ButtonDisabled
	}
	if c.PagerSelected == "" {
		c.PagerSelected = d.PagerSelected
	}
	if c.Site == "" {
		c.Site = d.Site
	}
	return c
}
