package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/deck"
	"github.com/five82/carousel/internal/slider"
	"github.com/five82/carousel/internal/state"
)

// panel is one slider on screen together with the deck it shows.
type panel struct {
	spec  config.SliderSpec
	index int

	deck    deck.Deck
	loaded  bool
	version int
	loadErr error // last failed reload; the previous deck stays mounted
	err     error // the slider could not be mounted

	slider  *slider.Slider
	surface *surface
	rect    rect
	cards   []card // strip order, clones included
}

// card is one slot of the rendered strip.
type card struct {
	slide deck.Slide
	slot  slider.Slot
}

func newPanel(spec config.SliderSpec, index int) *panel {
	return &panel{spec: spec, index: index}
}

// title is the deck file name shown in the panel header.
func (p *panel) title() string {
	return filepath.Base(p.spec.Deck)
}

// sync applies the store's view of the panel's deck. It reports whether the
// slider has to be remounted.
func (p *panel) sync(snap state.Snapshot) bool {
	ds, ok := snap.Deck(p.spec.Deck)
	if !ok {
		return false
	}
	p.loadErr = ds.LastError
	if !ds.Loaded || ds.Version == p.version {
		return false
	}
	p.deck = ds.Deck
	p.loaded = true
	p.version = ds.Version
	return true
}

// mount (re)creates the slider for the current deck. A remount keeps the
// position the old slider had reached; the first mount starts at the
// slide the deck selects.
func (p *panel) mount(sched slider.Scheduler, now func() time.Time) {
	start := p.deck.Selected
	if p.slider != nil {
		// Mid-wrap the position sits in the clone region; keep the real
		// slide it shadows.
		if n := p.slider.ItemCount(); n > 0 && !p.slider.Destroyed() {
			pos := p.slider.Position()
			start = ((pos % n) + n) % n
		}
		p.slider.Destroy()
		p.slider = nil
	}
	p.cards = nil
	p.err = nil
	if !p.loaded {
		return
	}

	cfg, err := p.spec.SliderConfig()
	if err != nil {
		p.err = err
		log.Printf("slider %s: %v", p.title(), err)
		return
	}
	cfg.StartAt = start

	p.surface = newSurface(now, p.measure)
	s, err := slider.New(cfg, len(p.deck.Slides), p.surface, slider.Options{
		Scheduler: sched,
		Index:     p.index,
	})
	if err != nil {
		p.err = fmt.Errorf("mount %s: %w", p.title(), err)
		log.Printf("%v", p.err)
		return
	}
	p.slider = s
	p.buildCards()
}

// buildCards lays the deck out in strip order, with wraparound clones at
// both ends when the slider wraps.
func (p *panel) buildCards() {
	p.cards = p.cards[:0]
	if p.slider == nil {
		return
	}
	opts := p.slider.Options()
	var pre, post []slider.Clone[deck.Slide]
	if opts.Wrap {
		pre, post = slider.BuildClones(p.deck.Slides, opts.ItemsToDisplay, opts.Orientation)
	}
	for _, c := range pre {
		p.cards = append(p.cards, card{slide: c.Item, slot: slider.Slot{Index: c.Source, Group: c.Group}})
	}
	for i, sl := range p.deck.Slides {
		p.cards = append(p.cards, card{slide: sl, slot: slider.Slot{Index: i}})
	}
	for _, c := range post {
		p.cards = append(p.cards, card{slide: c.Item, slot: slider.Slot{Index: c.Source, Group: c.Group}})
	}
}

// measure reports the panel body as the slider's container.
func (p *panel) measure() slider.Bounds {
	body := float64(p.rect.bodyRows())
	if p.rect.w == 0 {
		return slider.Bounds{}
	}
	b := slider.Bounds{Width: float64(p.rect.innerWidth()), ItemHeight: body}
	if p.spec.Orientation == "vertical" {
		b.ItemHeight = body / float64(p.itemsToDisplay())
	}
	return b
}

// itemsToDisplay is the effective item count of the display. Before the
// slider exists it is derived from the SliderSpec the same way the engine
// does.
func (p *panel) itemsToDisplay() int {
	if p.slider != nil {
		return p.slider.Options().ItemsToDisplay
	}
	k := max(p.spec.ItemsToDisplay, 1)
	if n := len(p.deck.Slides); n > 0 && k > n {
		k = n
	}
	return k
}

// resize moves the panel to r and re-measures the slider.
func (p *panel) resize(r rect) {
	p.rect = r
	if p.slider != nil {
		p.slider.RefreshSize()
	}
}

// setItemsToDisplay grows or shrinks the display by delta items.
func (p *panel) setItemsToDisplay(delta int) error {
	if p.slider == nil {
		return fmt.Errorf("%s has no slider", p.title())
	}
	if err := p.slider.SetItemsToDisplay(p.itemsToDisplay() + delta); err != nil {
		return err
	}
	p.buildCards()
	return nil
}

func (p *panel) animating() bool {
	return p.surface != nil && p.surface.animating()
}

func (p *panel) destroy() {
	if p.slider != nil {
		p.slider.Destroy()
	}
}
