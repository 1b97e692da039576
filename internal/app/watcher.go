package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/carousel/internal/deck"
	"github.com/five82/carousel/internal/state"
)

// reloadDebounce collapses the burst of events an editor save produces.
const reloadDebounce = 150 * time.Millisecond

// StartWatcher launches a background goroutine that reloads decks into the
// store when their files change. It returns once the watches are set up.
//
// Directories are watched rather than files: editors that save by renaming
// a temporary file would otherwise drop the watch.
func StartWatcher(ctx context.Context, store *state.Store, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	decks := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		decks[p] = true
		dirs[filepath.Dir(p)] = true
	}
	watched := 0
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			log.Printf("watch %s: %v", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		w.Close()
		return fmt.Errorf("no deck directory could be watched")
	}

	go watchLoop(ctx, w, store, decks)
	return nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, store *state.Store, decks map[string]bool) {
	defer w.Close()

	pending := make(map[string]bool)
	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			path, ok := deckEvent(ev, decks)
			if !ok {
				continue
			}
			pending[path] = true
			timer.Reset(reloadDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("deck watcher: %v", err)

		case <-timer.C:
			for path := range pending {
				reload(store, path)
			}
			clear(pending)
		}
	}
}

// deckEvent reports the deck an event touches. Removals and renames are
// ignored; the replacement file arrives as a create.
func deckEvent(ev fsnotify.Event, decks map[string]bool) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return "", false
	}
	path := filepath.Clean(ev.Name)
	return path, decks[path]
}

func loadDecks(store *state.Store, paths []string) {
	for _, p := range paths {
		reload(store, p)
	}
}

func reload(store *state.Store, path string) {
	d, err := deck.Load(path)
	if err != nil {
		log.Printf("load deck: %v", err)
	}
	store.Update(path, d, err)
}
