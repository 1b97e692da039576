// Package state provides thread-safe storage of loaded decks.
//
// # Overview
//
// The deck watcher (producer) parses deck files and records each result with
// Store.Update; the UI (consumer) polls Store.Snapshot on its own tick and
// rebuilds a slider when a deck's Version moves.
//
//	Watcher goroutine:            UI (Bubble Tea):
//	┌────────────────┐            ┌─────────────────┐
//	│ deck.Load()    │            │ tickMsg         │
//	│      ↓         │            │      ↓          │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│ next event...  │            │ rebuild panels  │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
// A failed load keeps the previously loaded deck and records the error, so a
// half-saved file never empties a carousel:
//
//	store.Update(path, d, nil)   → Deck = d, LastError = nil, Version++
//	store.Update(path, _, err)   → Deck unchanged, LastError = err
//
// Snapshot.Version increments on every Update; DeckState.Version only on
// successful loads.
//
// # Defensive Copying
//
// Update and Snapshot copy slides and bodies, and Snapshot re-wraps errors,
// so the UI can hold snapshots without sharing memory with the watcher.
//
// The zero Store is ready to use.
package state
