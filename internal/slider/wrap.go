package slider

// Group tells which end of the strip a clone was added to.
type Group int

const (
	GroupNone Group = iota
	GroupPre
	GroupPost
)

func (g Group) String() string {
	switch g {
	case GroupPre:
		return "pre"
	case GroupPost:
		return "post"
	default:
		return ""
	}
}

// Clone is a copy of a boundary item shown so that wraparound scrolling can
// pass the real ends of the list.
type Clone[T any] struct {
	Item T
	// Source is the index of the real item this clone shadows.
	Source int
	Group  Group
	// Layout is the orientation the clone is laid out for, matching the
	// real items.
	Layout Orientation
}

// BuildClones returns the pre and post clones in strip order. The pre clones
// repeat the last itemsToDisplay items, the post clones the first ones.
// Nothing is cloned unless the items overflow the display.
func BuildClones[T any](items []T, itemsToDisplay int, orientation Orientation) (pre, post []Clone[T]) {
	n := len(items)
	if itemsToDisplay <= 0 || n <= itemsToDisplay {
		return nil, nil
	}
	pre = make([]Clone[T], itemsToDisplay)
	post = make([]Clone[T], itemsToDisplay)
	for k := 0; k < itemsToDisplay; k++ {
		src := n - 1 - k
		// Each pre clone is inserted before the previous one.
		pre[itemsToDisplay-1-k] = Clone[T]{Item: items[src], Source: src, Group: GroupPre, Layout: orientation}
		post[k] = Clone[T]{Item: items[k], Source: k, Group: GroupPost, Layout: orientation}
	}
	return pre, post
}

// Slot is one element of the strip.
type Slot struct {
	// Index is the logical item shown in the slot.
	Index int
	Group Group
}

// Clone reports whether the slot holds a clone.
func (s Slot) Clone() bool { return s.Group != GroupNone }

// Strip is the ordered slot plan of a slider: pre clones, the real items,
// then post clones.
type Strip struct {
	itemCount int
	clones    int
}

func newStrip(itemCount, itemsToDisplay int, wrap bool) Strip {
	s := Strip{itemCount: itemCount}
	if wrap && itemCount > itemsToDisplay {
		s.clones = itemsToDisplay
	}
	return s
}

// Len is the number of slots, clones included.
func (s Strip) Len() int { return s.itemCount + 2*s.clones }

// Clones is the number of clones at each end.
func (s Strip) Clones() int { return s.clones }

// Slot maps an extended slot index back to its logical item.
func (s Strip) Slot(i int) Slot {
	switch {
	case i < s.clones:
		return Slot{Index: s.itemCount - s.clones + i, Group: GroupPre}
	case i < s.clones+s.itemCount:
		return Slot{Index: i - s.clones}
	default:
		return Slot{Index: i - s.clones - s.itemCount, Group: GroupPost}
	}
}

// Slots lists every slot in strip order.
func (s Strip) Slots() []Slot {
	out := make([]Slot, s.Len())
	for i := range out {
		out[i] = s.Slot(i)
	}
	return out
}
