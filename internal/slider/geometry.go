package slider

// Offset is a translation of the strip relative to the display.
type Offset struct {
	X float64
	Y float64
}

// Extent is a width/height pair.
type Extent struct {
	Width  float64
	Height float64
}

// Bounds is the host measurement geometry is derived from.
type Bounds struct {
	// Width is the width of the container the display lives in.
	Width float64
	// ItemHeight is the natural height of the tallest item.
	ItemHeight float64
}

// Layout is the derived geometry of one slider.
type Layout struct {
	Item    Extent
	Display Extent
	Strip   Extent
}

// along returns the item extent on the active axis.
func (l Layout) along(o Orientation) float64 {
	if o == Vertical {
		return l.Item.Height
	}
	return l.Item.Width
}

// computeLayout sizes items so that itemsToDisplay of them fill the display.
// slots counts every element on the strip, clones included.
func computeLayout(cfg Config, b Bounds, slots int) Layout {
	width := cfg.Width
	if width == 0 {
		width = b.Width
	}
	height := cfg.Height
	if height == 0 {
		height = b.ItemHeight
	}
	n := float64(cfg.ItemsToDisplay)
	count := float64(slots)

	if cfg.Orientation == Vertical {
		return Layout{
			Item:    Extent{Width: width, Height: height},
			Display: Extent{Width: width, Height: height * n},
			Strip:   Extent{Width: width, Height: height * count},
		}
	}

	item := width / n
	return Layout{
		Item:    Extent{Width: item, Height: height},
		Display: Extent{Width: width, Height: height},
		Strip:   Extent{Width: item * count, Height: height},
	}
}

// offsetFor places position on the active axis. wrapped shifts the window
// past the pre clones.
func offsetFor(cfg Config, l Layout, position int, wrapped bool) Offset {
	extent := l.along(cfg.Orientation)
	var wrapOffset float64
	if wrapped {
		wrapOffset = -extent * float64(cfg.ItemsToDisplay)
	}
	v := -(float64(position) * extent) + wrapOffset
	if cfg.Orientation == Vertical {
		return Offset{Y: v}
	}
	return Offset{X: v}
}
