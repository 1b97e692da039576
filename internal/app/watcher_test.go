package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/state"
)

func writeDeck(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDeckEvent(t *testing.T) {
	decks := map[string]bool{"/decks/a.txt": true}

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: "/decks/a.txt", Op: fsnotify.Write}, true},
		{"create unclean path", fsnotify.Event{Name: "/decks/./a.txt", Op: fsnotify.Create}, true},
		{"remove", fsnotify.Event{Name: "/decks/a.txt", Op: fsnotify.Remove}, false},
		{"chmod", fsnotify.Event{Name: "/decks/a.txt", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/decks/b.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := deckEvent(tt.ev, decks); got != tt.want {
				t.Fatalf("deckEvent(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestLoadDecks_RecordsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeDeck(t, good, "# One\n---\n# Two\n")
	missing := filepath.Join(dir, "missing.txt")

	store := &state.Store{}
	loadDecks(store, []string{good, missing})

	snap := store.Snapshot()
	if ds, _ := snap.Deck(good); !ds.Loaded || len(ds.Deck.Slides) != 2 {
		t.Fatalf("good deck = %#v", ds)
	}
	if ds, ok := snap.Deck(missing); !ok || ds.LastError == nil {
		t.Fatalf("missing deck should record an error: %#v", ds)
	}
}

func TestStartWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.txt")
	writeDeck(t, path, "# One\n")

	store := &state.Store{}
	loadDecks(store, []string{path})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := StartWatcher(ctx, store, []string{path}); err != nil {
		t.Fatalf("StartWatcher returned error: %v", err)
	}

	writeDeck(t, path, "# One\n---\n# Two\n---\n# Three\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ds, _ := store.Snapshot().Deck(path)
		if len(ds.Deck.Slides) == 3 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("deck was not reloaded after write")
}

func TestStartWatcher_NoDirectories(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "deck.txt")
	if err := StartWatcher(context.Background(), &state.Store{}, []string{missing}); err == nil {
		t.Fatal("StartWatcher returned nil error for unwatchable paths")
	}
}

func TestDeckPaths_Dedupes(t *testing.T) {
	specs := []config.SliderSpec{
		config.DefaultSlider("/decks/a.txt"),
		config.DefaultSlider("/decks/b.txt"),
		config.DefaultSlider("/decks/a.txt"),
	}
	got := deckPaths(specs)
	if len(got) != 2 || got[0] != "/decks/a.txt" || got[1] != "/decks/b.txt" {
		t.Fatalf("deckPaths = %v", got)
	}
}

func TestRun_NoDecks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := Run(context.Background(), Options{ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	if err != ErrNoDecks {
		t.Fatalf("Run error = %v, want ErrNoDecks", err)
	}
}
