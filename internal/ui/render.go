package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/carousel/internal/deck"
	"github.com/five82/carousel/internal/slider"
)

// Panels render with the stock class names.
var cardClasses = slider.DefaultClasses()

const (
	prevLabel = "‹ prev"
	nextLabel = "next ›"
	dotOn     = "●"
	dotOff    = "○"
)

// renderMain renders the header, every panel and the footer.
func (m Model) renderMain() string {
	parts := make([]string, 0, len(m.panels)+2)
	parts = append(parts, m.renderHeader())
	for i, p := range m.panels {
		parts = append(parts, m.renderPanel(p, i == m.focus))
	}
	parts = append(parts, m.renderFooter())
	return strings.Join(parts, "\n")
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("carousel", styles.AccentText.Bold(true)) +
		bg.Spaces(2) +
		bg.Render(fmt.Sprintf("%d sliders", len(m.panels)), styles.MutedText)
	right := bg.Render(m.theme.Name, styles.FaintText)

	return styles.Header.Width(m.width).Render(bg.Spread(left, right, max(m.width-2, 0)))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	var content string
	switch {
	case m.prompting:
		content = m.prompt.View()
	case m.status != "":
		st := styles.SuccessText
		if m.statusErr {
			st = styles.DangerText
		}
		content = st.Background(lipgloss.Color(m.theme.Surface)).Render(m.status)
	default:
		content = m.help.View(m.keys)
	}
	content = ansi.Truncate(content, max(m.width-2, 0), "…")
	return styles.Footer.Width(m.width).Render(content)
}

// renderPanel draws one bordered slider panel at its rect size.
func (m Model) renderPanel(p *panel, focused bool) string {
	styles := m.theme.Styles()
	w, rows := p.rect.innerWidth(), p.rect.bodyRows()

	lines := make([]string, 0, rows+panelChromeRows)
	lines = append(lines, m.panelTitle(p, w))

	switch {
	case p.slider != nil:
		lines = append(lines, m.renderStrip(p, w, rows)...)
	case p.err != nil:
		lines = append(lines, padLines([]string{styles.DangerText.Render(ansi.Truncate(p.err.Error(), w, "…"))}, w, rows)...)
	case p.loadErr != nil:
		lines = append(lines, padLines([]string{styles.DangerText.Render(ansi.Truncate(p.loadErr.Error(), w, "…"))}, w, rows)...)
	default:
		lines = append(lines, padLines([]string{styles.MutedText.Render("Loading...")}, w, rows)...)
	}

	if p.slider != nil {
		lines = append(lines, m.renderControls(p.surface.view, w))
	} else {
		lines = append(lines, strings.Repeat(" ", w))
	}

	st := styles.Panel
	if focused {
		st = styles.PanelFocus
	}
	return st.Width(w).Render(strings.Join(lines, "\n"))
}

func (m Model) panelTitle(p *panel, w int) string {
	styles := m.theme.Styles()

	left := styles.Text.Bold(true).Render(p.title())
	if p.slider != nil && p.surface.view.Site != "" {
		left += " " + styles.FaintText.Render(p.surface.view.Site)
	}
	if p.loadErr != nil && p.loaded {
		left += " " + styles.WarningText.Render("reload failed")
	}

	var right string
	if s := p.slider; s != nil {
		n := s.ItemCount()
		pos := ((s.Position() % n) + n) % n
		right = styles.MutedText.Render(fmt.Sprintf("%d/%d", pos+1, n))
		if s.Autoplaying() {
			right = styles.SuccessText.Render("▶") + " " + right
		}
	}
	return spread(left, right, w)
}

// renderStrip draws the visible window of the strip at the surface offset.
func (m Model) renderStrip(p *panel, w, rows int) []string {
	s := p.slider
	lay := s.Layout()
	if s.Options().Orientation == slider.Vertical {
		return m.renderVertical(p, lay, w, rows)
	}

	itemW := lay.Item.Width
	if itemW <= 0 {
		return padLines(nil, w, rows)
	}
	dispW := min(int(math.Round(lay.Display.Width)), w)
	if dispW <= 0 {
		dispW = w
	}
	cardH := clampInt(int(math.Round(lay.Item.Height)), 1, rows)
	left := int(math.Round(-p.surface.offset.X))

	cards := make([]string, 0, s.Options().ItemsToDisplay+2)
	first := -1
	for i, c := range p.cards {
		x0 := int(math.Round(float64(i) * itemW))
		x1 := int(math.Round(float64(i+1) * itemW))
		if x1 <= x0 || x1 <= left || x0 >= left+dispW {
			continue
		}
		if first < 0 {
			first = x0
		}
		cards = append(cards, m.renderCard(c.slide, slotClasses(p.surface.view, c.slot), x1-x0, cardH))
	}
	if len(cards) == 0 {
		return padLines(nil, w, rows)
	}

	joined := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n")
	out := make([]string, 0, rows)
	for _, line := range joined {
		out = append(out, cropLine(line, left-first, dispW)+strings.Repeat(" ", w-dispW))
	}
	return padLines(out, w, rows)
}

func (m Model) renderVertical(p *panel, lay slider.Layout, w, rows int) []string {
	itemH := lay.Item.Height
	if itemH <= 0 {
		return padLines(nil, w, rows)
	}
	dispH := min(int(math.Round(lay.Display.Height)), rows)
	cardW := clampInt(int(math.Round(lay.Item.Width)), 1, w)
	top := int(math.Round(-p.surface.offset.Y))

	var cards []string
	first := -1
	for i, c := range p.cards {
		y0 := int(math.Round(float64(i) * itemH))
		y1 := int(math.Round(float64(i+1) * itemH))
		if y1 <= y0 || y1 <= top || y0 >= top+dispH {
			continue
		}
		if first < 0 {
			first = y0
		}
		cards = append(cards, m.renderCard(c.slide, slotClasses(p.surface.view, c.slot), cardW, y1-y0))
	}
	if len(cards) == 0 {
		return padLines(nil, w, rows)
	}

	joined := strings.Split(lipgloss.JoinVertical(lipgloss.Left, cards...), "\n")
	out := make([]string, 0, rows)
	for r := top - first; r < top-first+dispH; r++ {
		if r < 0 || r >= len(joined) {
			out = append(out, strings.Repeat(" ", w))
			continue
		}
		out = append(out, cropLine(joined[r], 0, w))
	}
	return padLines(out, w, rows)
}

// renderCard draws a slide as a bordered card of exactly w by h cells.
func (m Model) renderCard(slide deck.Slide, classes string, w, h int) string {
	if w < 4 || h < 3 {
		blank := strings.Repeat(" ", max(w, 0))
		return strings.Join(repeatLines(blank, h), "\n")
	}
	inner := w - 4
	content := make([]string, 0, h-2)
	if slide.Title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Render(ansi.Truncate(slide.Title, inner, "…")))
	}
	for _, line := range slide.Body {
		if len(content) == h-2 {
			break
		}
		content = append(content, ansi.Truncate(line, inner, "…"))
	}
	if len(content) > h-2 {
		content = content[:h-2]
	}
	st := m.theme.Styles().CardStyle(classes)
	return st.Width(w - 2).Height(h - 2).Render(strings.Join(content, "\n"))
}

func (m Model) renderControls(view slider.Presentation, w int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	cursor := 0
	for _, z := range controlZones(view, w) {
		if z.x0 > cursor {
			b.WriteString(strings.Repeat(" ", z.x0-cursor))
		}
		st := styles.AccentText
		switch z.kind {
		case zonePrev, zoneNext:
			if z.disabled {
				st = styles.FaintText
			}
		case zonePage:
			if z.page != view.Pager.Selected {
				st = styles.MutedText
			}
		case zonePagerLabel:
			st = styles.MutedText
		}
		b.WriteString(st.Render(z.label))
		cursor = z.x1
	}
	if cursor < w {
		b.WriteString(strings.Repeat(" ", w-cursor))
	}
	return b.String()
}

type zoneKind int

const (
	zonePrev zoneKind = iota
	zoneNext
	zonePage
	// zonePagerLabel replaces the dots when they do not fit; it is not
	// clickable.
	zonePagerLabel
)

// zone is a control on the controls row. x0 and x1 are cells relative to
// the panel's inner left edge.
type zone struct {
	kind     zoneKind
	page     int
	x0, x1   int
	label    string
	disabled bool
}

// controlZones lays out the buttons and the pager, in ascending x order.
func controlZones(view slider.Presentation, width int) []zone {
	var zones []zone
	bw := ansi.StringWidth(prevLabel)
	reserved := 0
	if view.Buttons.Enabled && width >= 2*bw+1 {
		reserved = bw + 1
		zones = append(zones, zone{
			kind: zonePrev, page: -1, x0: 0, x1: bw, label: prevLabel,
			disabled: view.PrevButtonClass() != "",
		})
	}

	if view.Pager.Enabled && view.Pager.Count > 0 {
		room := width - 2*reserved
		if dots := 2*view.Pager.Count - 1; dots <= room {
			start := (width - dots) / 2
			for i := range view.Pager.Count {
				label := dotOff
				if view.PagerClass(i) != "" {
					label = dotOn
				}
				x := start + 2*i
				zones = append(zones, zone{kind: zonePage, page: i, x0: x, x1: x + 1, label: label})
			}
		} else {
			sel := "-"
			if view.Pager.Selected >= 0 {
				sel = fmt.Sprint(view.Pager.Selected + 1)
			}
			label := fmt.Sprintf("%s/%d", sel, view.Pager.Count)
			lw := ansi.StringWidth(label)
			if lw <= room {
				start := (width - lw) / 2
				zones = append(zones, zone{kind: zonePagerLabel, page: -1, x0: start, x1: start + lw, label: label})
			}
		}
	}

	if reserved > 0 {
		zones = append(zones, zone{
			kind: zoneNext, page: -1, x0: width - bw, x1: width, label: nextLabel,
			disabled: view.NextButtonClass() != "",
		})
	}
	return zones
}

// hitZone returns the clickable zone under x.
func hitZone(zones []zone, x int) (zone, bool) {
	for _, z := range zones {
		if z.kind != zonePagerLabel && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return zone{}, false
}

func slotClasses(view slider.Presentation, slot slider.Slot) string {
	if slot.Clone() {
		return view.CloneClass(slot.Group)
	}
	return view.ItemClass(slot.Index)
}

// cropLine returns width cells of line starting at cell left. Cells outside
// the line are blank.
func cropLine(line string, left, width int) string {
	if width <= 0 {
		return ""
	}
	var prefix string
	if left < 0 {
		pad := min(-left, width)
		prefix = strings.Repeat(" ", pad)
		width -= pad
		left = 0
	}
	cut := ansi.Cut(line, left, left+width)
	if cw := ansi.StringWidth(cut); cw < width {
		cut += strings.Repeat(" ", width-cw)
	}
	return prefix + cut
}

// spread places left and right at the edges of a line of width cells.
func spread(left, right string, width int) string {
	lw, rw := ansi.StringWidth(left), ansi.StringWidth(right)
	if lw+rw+1 > width {
		left = ansi.Truncate(left, width, "…")
		return left + strings.Repeat(" ", max(width-ansi.StringWidth(left), 0))
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

// padLines pads lines to width and the list to rows entries.
func padLines(lines []string, width, rows int) []string {
	out := make([]string, 0, rows)
	for _, l := range lines {
		if len(out) == rows {
			break
		}
		if lw := ansi.StringWidth(l); lw < width {
			l += strings.Repeat(" ", width-lw)
		}
		out = append(out, l)
	}
	for len(out) < rows {
		out = append(out, strings.Repeat(" ", width))
	}
	return out
}

func repeatLines(s string, n int) []string {
	out := make([]string, max(n, 0))
	for i := range out {
		out[i] = s
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
