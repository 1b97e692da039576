package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty is returned for a deck without any slide content.
var ErrEmpty = errors.New("deck has no slides")

// Slide is one item of a deck.
type Slide struct {
	Title string
	Body  []string
}

// Deck is a parsed deck file.
type Deck struct {
	Path   string
	Slides []Slide
	// Selected is the slide marked with "--- *", or 0.
	Selected int
}

const (
	separator = "---"
	selected  = "--- *"
)

// Load reads and parses the deck at path.
func Load(path string) (Deck, error) {
	file, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("open deck: %w", err)
	}
	defer file.Close()

	d, err := Parse(file)
	if err != nil {
		return Deck{}, fmt.Errorf("deck %s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse reads slides separated by "---" lines. A "--- *" separator marks the
// slide after it as selected. A first line starting with "# " is the title.
func Parse(r io.Reader) (Deck, error) {
	var (
		d       Deck
		current []string
		mark    bool
		marked  = -1
	)
	flush := func() {
		s, ok := newSlide(current)
		current = nil
		if !ok {
			mark = false
			return
		}
		if mark {
			marked = len(d.Slides)
			mark = false
		}
		d.Slides = append(d.Slides, s)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		switch line {
		case separator:
			flush()
			continue
		case selected:
			flush()
			mark = true
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	flush()

	if len(d.Slides) == 0 {
		return Deck{}, ErrEmpty
	}
	if marked >= 0 {
		d.Selected = marked
	}
	return d, nil
}

// newSlide trims blank lines around the body; a slide of only blank lines
// is dropped.
func newSlide(lines []string) (Slide, bool) {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return Slide{}, false
	}
	lines = lines[start:end]

	var s Slide
	if title, ok := strings.CutPrefix(lines[0], "# "); ok {
		s.Title = strings.TrimSpace(title)
		lines = lines[1:]
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
	}
	s.Body = append([]string(nil), lines...)
	return s, true
}

// Titles lists the slide titles, falling back to the slide number.
func (d Deck) Titles() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Title
		if out[i] == "" {
			out[i] = fmt.Sprintf("Slide %d", i+1)
		}
	}
	return out
}
