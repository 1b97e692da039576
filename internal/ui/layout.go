package ui

import "time"

// Screen chrome, in rows.
const (
	headerRows = 1
	footerRows = 1

	// Inside a panel border: the title row and the controls row.
	panelChromeRows = 2
	borderCells     = 2

	// minBodyRows keeps a slide card readable when many panels share the
	// screen.
	minBodyRows = 3
)

// Timing constants.
const (
	// frameInterval paces running strip animations (about 60 fps).
	frameInterval = 16 * time.Millisecond

	// DefaultPollInterval is how often the UI checks the store for reloaded
	// decks.
	DefaultPollInterval = 500 * time.Millisecond
)

// rect is a screen area in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Rows of a panel, in screen coordinates.
func (r rect) bodyTop() int     { return r.y + 2 }
func (r rect) controlsRow() int { return r.y + r.h - 2 }
func (r rect) innerX() int      { return r.x + 1 }
func (r rect) innerWidth() int  { return max(r.w-borderCells, 1) }

func (r rect) bodyRows() int {
	return max(r.h-borderCells-panelChromeRows, 1)
}

// panelRects stacks n panels in the area between the header and footer.
// Extra rows go to the last panel.
func panelRects(width, height, n int) []rect {
	if n == 0 {
		return nil
	}
	avail := height - headerRows - footerRows
	each := max(avail/n, minBodyRows+borderCells+panelChromeRows)
	rects := make([]rect, n)
	y := headerRows
	for i := range rects {
		h := each
		if i == n-1 && avail-each*n > 0 {
			h += avail - each*n
		}
		rects[i] = rect{x: 0, y: y, w: width, h: h}
		y += h
	}
	return rects
}
