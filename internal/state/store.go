package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/carousel/internal/deck"
)

// DeckState is the latest load result for one deck file.
type DeckState struct {
	Deck        deck.Deck
	Loaded      bool
	LastUpdated time.Time
	LastError   error
	// Version increments on every successful load.
	Version int
}

// Snapshot represents the latest decks available to the UI.
type Snapshot struct {
	Decks map[string]DeckState
	// Version increments on every Update, failed or not.
	Version int
}

// Deck returns the state of the deck at path.
func (s Snapshot) Deck(path string) (DeckState, bool) {
	d, ok := s.Decks[path]
	return d, ok
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a load of the deck at path. When err is non-nil the
// previously loaded deck is kept but the error is recorded for visibility.
func (s *Store) Update(path string, d deck.Deck, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Decks == nil {
		s.snapshot.Decks = make(map[string]DeckState)
	}
	s.snapshot.Version++

	ds := s.snapshot.Decks[path]
	ds.LastUpdated = time.Now()
	if err != nil {
		ds.LastError = err
		s.snapshot.Decks[path] = ds
		return
	}

	ds.Deck = cloneDeck(d)
	ds.Loaded = true
	ds.LastError = nil
	ds.Version++
	s.snapshot.Decks[path] = ds
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Version: s.snapshot.Version}
	if len(s.snapshot.Decks) == 0 {
		return snap
	}
	snap.Decks = make(map[string]DeckState, len(s.snapshot.Decks))
	for path, ds := range s.snapshot.Decks {
		ds.Deck = cloneDeck(ds.Deck)
		if ds.LastError != nil {
			ds.LastError = fmt.Errorf("%w", ds.LastError)
		}
		snap.Decks[path] = ds
	}
	return snap
}

func cloneDeck(d deck.Deck) deck.Deck {
	if len(d.Slides) == 0 {
		d.Slides = nil
		return d
	}
	slides := make([]deck.Slide, len(d.Slides))
	for i, s := range d.Slides {
		slides[i] = deck.Slide{Title: s.Title, Body: append([]string(nil), s.Body...)}
	}
	d.Slides = slides
	return d
}
