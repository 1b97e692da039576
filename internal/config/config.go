package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/carousel/internal/slider"
)

// Config is the carousel configuration file.
type Config struct {
	// Watch reloads decks when their files change.
	Watch   bool
	Sliders []SliderSpec
}

// SliderSpec describes one slider panel and the deck it shows.
type SliderSpec struct {
	Deck            string
	Orientation     string
	ItemsToDisplay  int
	ItemsToScroll   int
	Duration        time.Duration
	Wrap            bool
	Buttons         bool
	Pager           bool
	ItemClasses     bool
	SiteClasses     bool
	UseHardware     bool
	RequireOverflow bool
	Width           int
	Height          int
	Autoplay        AutoplaySpec
	Touch           TouchSpec
}

// AutoplaySpec is the [slider.autoplay] table.
type AutoplaySpec struct {
	Enabled   bool
	Pause     time.Duration
	Delay     time.Duration
	Queued    bool
	Direction string
}

// TouchSpec is the [slider.touch] table. Distances are in cells.
type TouchSpec struct {
	Enabled            bool
	Tolerance          float64
	DirectionTolerance float64
}

const (
	defaultConfigPath         = "~/.config/carousel/config.toml"
	defaultDurationMS         = 350
	defaultPauseMS            = 3000
	defaultDelayMS            = 500
	defaultTouchTolerance     = 4
	defaultDirectionTolerance = 2
)

type rawConfig struct {
	Watch   *bool       `toml:"watch"`
	Sliders []rawSlider `toml:"slider"`
}

type rawSlider struct {
	Deck            string      `toml:"deck"`
	Orientation     string      `toml:"orientation"`
	ItemsToDisplay  int         `toml:"items_to_display"`
	ItemsToScroll   int         `toml:"items_to_scroll"`
	DurationMS      *int        `toml:"duration_ms"`
	Wrap            bool        `toml:"wrap"`
	Buttons         *bool       `toml:"buttons"`
	Pager           *bool       `toml:"pager"`
	ItemClasses     *bool       `toml:"item_classes"`
	SiteClasses     *bool       `toml:"site_classes"`
	UseHardware     *bool       `toml:"use_hardware"`
	RequireOverflow bool        `toml:"require_overflow"`
	Width           int         `toml:"width"`
	Height          int         `toml:"height"`
	Autoplay        rawAutoplay `toml:"autoplay"`
	Touch           rawTouch    `toml:"touch"`
}

type rawAutoplay struct {
	Enabled   bool   `toml:"enabled"`
	PauseMS   int    `toml:"pause_ms"`
	DelayMS   *int   `toml:"delay_ms"`
	Queued    bool   `toml:"queued"`
	Direction string `toml:"direction"`
}

type rawTouch struct {
	Enabled            *bool    `toml:"enabled"`
	Tolerance          *float64 `toml:"tolerance"`
	DirectionTolerance *float64 `toml:"direction_tolerance"`
}

// Load locates and parses the carousel config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Watch: true}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	for i, r := range raw.Sliders {
		spec := r.resolve()
		if spec.Deck == "" {
			return Config{}, fmt.Errorf("slider %d: deck is required", i+1)
		}
		cfg.Sliders = append(cfg.Sliders, spec)
	}
	return cfg, nil
}

// DefaultSlider returns the spec used for decks named on the command line.
func DefaultSlider(deck string) SliderSpec {
	return rawSlider{Deck: deck}.resolve()
}

// AddDecks appends a default slider for every deck not already configured.
func (c *Config) AddDecks(decks ...string) {
	seen := make(map[string]bool, len(c.Sliders))
	for _, s := range c.Sliders {
		seen[s.Deck] = true
	}
	for _, d := range decks {
		spec := DefaultSlider(d)
		if spec.Deck == "" || seen[spec.Deck] {
			continue
		}
		seen[spec.Deck] = true
		c.Sliders = append(c.Sliders, spec)
	}
}

func (r rawSlider) resolve() SliderSpec {
	spec := SliderSpec{
		Deck:            mustExpand(r.Deck),
		Orientation:     strings.ToLower(strings.TrimSpace(r.Orientation)),
		ItemsToDisplay:  r.ItemsToDisplay,
		ItemsToScroll:   r.ItemsToScroll,
		Duration:        millis(r.DurationMS, defaultDurationMS),
		Wrap:            r.Wrap,
		Buttons:         boolOr(r.Buttons, true),
		Pager:           boolOr(r.Pager, true),
		ItemClasses:     boolOr(r.ItemClasses, true),
		SiteClasses:     boolOr(r.SiteClasses, true),
		UseHardware:     boolOr(r.UseHardware, true),
		RequireOverflow: r.RequireOverflow,
		Width:           r.Width,
		Height:          r.Height,
		Autoplay: AutoplaySpec{
			Enabled:   r.Autoplay.Enabled,
			Pause:     time.Duration(r.Autoplay.PauseMS) * time.Millisecond,
			Delay:     millis(r.Autoplay.DelayMS, defaultDelayMS),
			Queued:    r.Autoplay.Queued,
			Direction: strings.ToLower(strings.TrimSpace(r.Autoplay.Direction)),
		},
		Touch: TouchSpec{
			Enabled:            boolOr(r.Touch.Enabled, true),
			Tolerance:          floatOr(r.Touch.Tolerance, defaultTouchTolerance),
			DirectionTolerance: floatOr(r.Touch.DirectionTolerance, defaultDirectionTolerance),
		},
	}
	if spec.Orientation == "" {
		spec.Orientation = "horizontal"
	}
	if spec.Autoplay.Pause <= 0 {
		spec.Autoplay.Pause = defaultPauseMS * time.Millisecond
	}
	if spec.Autoplay.Direction == "" {
		spec.Autoplay.Direction = "forward"
	}
	return spec
}

// SliderConfig converts the spec into a validated engine configuration.
func (s SliderSpec) SliderConfig() (slider.Config, error) {
	cfg := slider.DefaultConfig()

	switch s.Orientation {
	case "", "horizontal":
		cfg.Orientation = slider.Horizontal
	case "vertical":
		cfg.Orientation = slider.Vertical
	default:
		return slider.Config{}, fmt.Errorf("orientation %q: want horizontal or vertical", s.Orientation)
	}

	switch s.Autoplay.Direction {
	case "", "forward", "next":
		cfg.Autoplay.Direction = slider.Forward
	case "backward", "previous", "prev":
		cfg.Autoplay.Direction = slider.Backward
	default:
		return slider.Config{}, fmt.Errorf("autoplay direction %q: want forward or backward", s.Autoplay.Direction)
	}

	if s.ItemsToDisplay < 0 || s.ItemsToScroll < 0 {
		return slider.Config{}, fmt.Errorf("items_to_display and items_to_scroll must not be negative")
	}
	if s.Width < 0 || s.Height < 0 {
		return slider.Config{}, fmt.Errorf("width and height must not be negative")
	}

	cfg.ItemsToDisplay = s.ItemsToDisplay
	cfg.ItemsToScroll = s.ItemsToScroll
	cfg.Duration = s.Duration
	cfg.Width = float64(s.Width)
	cfg.Height = float64(s.Height)
	cfg.RequireOverflow = s.RequireOverflow
	cfg.Buttons = s.Buttons
	cfg.Pager = s.Pager
	cfg.ItemClasses = s.ItemClasses
	cfg.SiteClasses = s.SiteClasses
	cfg.Wrap = s.Wrap
	cfg.DisableHardware = !s.UseHardware
	cfg.Autoplay.Enabled = s.Autoplay.Enabled
	cfg.Autoplay.Pause = s.Autoplay.Pause
	cfg.Autoplay.Delay = s.Autoplay.Delay
	cfg.Autoplay.DelayQueued = s.Autoplay.Queued
	cfg.Touch = slider.TouchConfig{
		Enabled:            s.Touch.Enabled,
		Tolerance:          s.Touch.Tolerance,
		DirectionTolerance: s.Touch.DirectionTolerance,
	}
	return cfg, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func millis(v *int, def int) time.Duration {
	if v == nil {
		return time.Duration(def) * time.Millisecond
	}
	return time.Duration(*v) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
