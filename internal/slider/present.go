package slider

import (
	"slices"
	"strconv"
	"strings"
)

// Role is the relation of an item to the current position.
type Role int

const (
	RoleNone Role = iota
	RolePrevious
	RoleCurrent
	RoleNext
)

func (r Role) String() string {
	switch r {
	case RolePrevious:
		return "previous"
	case RoleCurrent:
		return "current"
	case RoleNext:
		return "next"
	default:
		return "none"
	}
}

// Buttons is the state of the previous/next controls.
type Buttons struct {
	Enabled      bool
	PrevDisabled bool
	NextDisabled bool
}

// Pager is the state of the page markers.
type Pager struct {
	Enabled bool
	Count   int
	// Selected is the highlighted entry, -1 when none is.
	Selected int
}

// Presentation is everything derived from the position that hosts render.
type Presentation struct {
	Buttons Buttons
	Pager   Pager
	// Site is the page class of the display's parent, empty when site
	// classes are off.
	Site string
	// Items holds one role per real item; nil when item classes are off.
	Items []Role
	// Pre and Post are the roles of the clone groups.
	Pre  Role
	Post Role

	classes Classes
}

func (p Presentation) clone() Presentation {
	p.Items = slices.Clone(p.Items)
	return p
}

// ItemClass returns the role class of real item i.
func (p Presentation) ItemClass(i int) string {
	if i < 0 || i >= len(p.Items) {
		return ""
	}
	return p.roleClass(p.Items[i])
}

// CloneClass returns the class list of a clone in group g.
func (p Presentation) CloneClass(g Group) string {
	parts := []string{p.classes.Clone, g.String()}
	role := p.Pre
	if g == GroupPost {
		role = p.Post
	}
	if c := p.roleClass(role); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, " ")
}

// PrevButtonClass returns the disabled class when the button is disabled.
func (p Presentation) PrevButtonClass() string {
	if p.Buttons.Enabled && p.Buttons.PrevDisabled {
		return p.classes.ButtonDisabled
	}
	return ""
}

// NextButtonClass returns the disabled class when the button is disabled.
func (p Presentation) NextButtonClass() string {
	if p.Buttons.Enabled && p.Buttons.NextDisabled {
		return p.classes.ButtonDisabled
	}
	return ""
}

// PagerClass returns the selected class for the selected entry.
func (p Presentation) PagerClass(i int) string {
	if p.Pager.Enabled && i == p.Pager.Selected {
		return p.classes.PagerSelected
	}
	return ""
}

func (p Presentation) roleClass(r Role) string {
	switch r {
	case RolePrevious:
		return p.classes.Previous
	case RoleCurrent:
		return p.classes.Current
	case RoleNext:
		return p.classes.Next
	default:
		return ""
	}
}

func presentButtons(enabled bool, position, itemCount, itemsToDisplay int, wrap bool) Buttons {
	if !enabled {
		return Buttons{}
	}
	return Buttons{
		Enabled:      true,
		PrevDisabled: !wrap && position <= 0,
		NextDisabled: !wrap && position >= itemCount-itemsToDisplay,
	}
}

// presentPager has one entry per start position that needs no wrapping.
func presentPager(enabled bool, position, itemCount, itemsToDisplay int) Pager {
	if !enabled {
		return Pager{Selected: -1}
	}
	p := Pager{Enabled: true, Count: itemCount - itemsToDisplay + 1, Selected: -1}
	if position >= 0 && position < p.Count {
		p.Selected = position
	}
	return p
}

func presentSite(enabled bool, prefix string, position int) string {
	if !enabled {
		return ""
	}
	return prefix + strconv.Itoa(position+1)
}

// presentItems classifies the real items and, with wraparound, the clone
// groups. While a wrapped frame is shown the clones on screen and the real
// items they shadow are all current.
func presentItems(enabled bool, position, itemCount, itemsToDisplay, itemsToScroll int, wrap bool) (items []Role, pre, post Role) {
	if !enabled {
		return nil, RoleNone, RoleNone
	}
	items = make([]Role, itemCount)
	for i := range items {
		switch {
		case i < position:
			items[i] = RolePrevious
		case i == position:
			items[i] = RoleCurrent
		default:
			items[i] = RoleNext
		}
	}
	if !wrap {
		return items, RoleNone, RoleNone
	}

	pre = RolePrevious
	if position < -(itemsToDisplay - itemsToScroll) {
		pre = RoleCurrent
		if from := itemCount - itemsToDisplay; from >= 0 {
			markCurrent(items, from, itemCount)
		}
	}

	post = RoleNext
	if position >= itemCount {
		post = RoleCurrent
		if itemsToDisplay < itemCount {
			markCurrent(items, 0, itemsToDisplay)
		}
	}
	return items, pre, post
}

func markCurrent(items []Role, from, to int) {
	for i := from; i < to && i < len(items); i++ {
		items[i] = RoleCurrent
	}
}
