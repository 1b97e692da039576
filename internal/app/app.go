package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/state"
	"github.com/five82/carousel/internal/ui"
)

// ErrNoDecks is returned when neither the config nor the command line names a deck.
var ErrNoDecks = errors.New("no decks: name one on the command line or add a [[slider]] to the config")

// Options configure the carousel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/carousel/prefs.toml
	Decks      []string
}

// Run boots the carousel TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.AddDecks(opts.Decks...)
	if len(cfg.Sliders) == 0 {
		return ErrNoDecks
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	paths := deckPaths(cfg.Sliders)

	// Populate the store before the UI starts so the first frame has decks.
	loadDecks(store, paths)

	if cfg.Watch {
		if err := StartWatcher(ctx, store, paths); err != nil {
			log.Printf("deck watcher disabled: %v", err)
		}
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Sliders:   cfg.Sliders,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func deckPaths(specs []config.SliderSpec) []string {
	seen := make(map[string]bool, len(specs))
	paths := make([]string, 0, len(specs))
	for _, s := range specs {
		if seen[s.Deck] {
			continue
		}
		seen[s.Deck] = true
		paths = append(paths, s.Deck)
	}
	return paths
}
