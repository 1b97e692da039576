// Package app provides the orchestration layer for the carousel application.
//
// # Overview
//
// This package wires together configuration, deck loading, the deck watcher
// and the UI. It is the composition root where all dependencies are
// initialized and connected.
//
//  1. Load the carousel config from ~/.config/carousel/config.toml
//  2. Append decks named on the command line
//  3. Load user prefs (theme)
//  4. Load every deck into a shared state.Store
//  5. Start the fsnotify deck watcher when watch is on
//  6. Start the TUI and block until the user quits or the context ends
//
// # Components
//
//   - app.go: Run and deck path collection
//   - watcher.go: background goroutine that reloads decks on file changes
//
// # Data Flow
//
//	Run()
//	  ├─> config.Load()   carousel config
//	  ├─> prefs.Load()    theme
//	  ├─> loadDecks()     initial store contents
//	  ├─> StartWatcher()  fsnotify → deck.Load → store.Update
//	  └─> ui.Run()        Bubble Tea (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file
//   - No deck configured at all
//   - Terminal program failure
//
// Recoverable errors (logged, recorded in the store):
//   - Deck files that are missing or empty; the UI shows the error on the
//     panel and keeps any previously loaded deck
//   - Watcher setup or event errors; reload stops, the UI keeps running
package app
