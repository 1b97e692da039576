package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BgStyle renders segments that share one background color. Styled segments
// end with an ANSI reset, which leaves unstyled gaps between them; BgStyle
// gives the separators and padding the background too.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg lipgloss.Color
}

// NewBgStyle creates a new background style helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{bg: lipgloss.Color(bgColor)}
}

// Render renders text with style on the shared background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Spread places left and right at the edges of a line of width cells. When
// both do not fit, right is dropped and left is truncated.
func (b BgStyle) Spread(left, right string, width int) string {
	lw, rw := ansi.StringWidth(left), ansi.StringWidth(right)
	if lw+rw+1 > width {
		if lw > width {
			left = ansi.Truncate(left, width, "…")
			lw = ansi.StringWidth(left)
		}
		return left + b.Spaces(width-lw)
	}
	return left + b.Spaces(width-lw-rw) + right
}
