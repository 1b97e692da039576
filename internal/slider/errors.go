package slider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned by New for an empty item list.
	ErrNoItems = errors.New("slider: no items")
	// ErrNotEnoughItems is returned by New when RequireOverflow is set and
	// every item fits the display.
	ErrNotEnoughItems = errors.New("slider: items do not overflow the display")
	// ErrDestroyed is returned by calls made after Destroy.
	ErrDestroyed = errors.New("slider: destroyed")
)

// ConfigurationError reports a rejected configuration value. The slider
// state is unchanged when one is returned.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("slider: invalid %s: %s", e.Field, e.Reason)
}

func configError(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}
