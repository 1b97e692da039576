package slider

import (
	"slices"
	"testing"
)

func TestPresentButtons(t *testing.T) {
	tests := []struct {
		name     string
		position int
		wrap     bool
		want     Buttons
	}{
		{name: "first", position: 0, want: Buttons{Enabled: true, PrevDisabled: true}},
		{name: "middle", position: 1, want: Buttons{Enabled: true}},
		{name: "last", position: 3, want: Buttons{Enabled: true, NextDisabled: true}},
		{name: "wrap first", position: 0, wrap: true, want: Buttons{Enabled: true}},
		{name: "wrap last", position: 3, wrap: true, want: Buttons{Enabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := presentButtons(true, tt.position, 5, 2, tt.wrap); got != tt.want {
				t.Fatalf("buttons = %+v, want %+v", got, tt.want)
			}
		})
	}
	if got := presentButtons(false, 0, 5, 2, false); got != (Buttons{}) {
		t.Fatalf("disabled buttons = %+v", got)
	}
}

func TestPresentPager(t *testing.T) {
	tests := []struct {
		position int
		want     Pager
	}{
		{position: 0, want: Pager{Enabled: true, Count: 4, Selected: 0}},
		{position: 3, want: Pager{Enabled: true, Count: 4, Selected: 3}},
		{position: -1, want: Pager{Enabled: true, Count: 4, Selected: -1}},
		{position: 5, want: Pager{Enabled: true, Count: 4, Selected: -1}},
	}
	for _, tt := range tests {
		if got := presentPager(true, tt.position, 5, 2); got != tt.want {
			t.Fatalf("position %d: pager = %+v, want %+v", tt.position, got, tt.want)
		}
	}
}

func TestPresentSite(t *testing.T) {
	if got := presentSite(true, "page", 2); got != "page3" {
		t.Fatalf("site = %q, want page3", got)
	}
	if got := presentSite(false, "page", 2); got != "" {
		t.Fatalf("site = %q, want empty", got)
	}
}

func TestPresentItems(t *testing.T) {
	P, C, N := RolePrevious, RoleCurrent, RoleNext
	tests := []struct {
		name      string
		position  int
		wrap      bool
		items     []Role
		pre, post Role
	}{
		{name: "plain", position: 1, items: []Role{P, C, N, N}},
		{name: "wrap in range", position: 0, wrap: true, items: []Role{C, N, N, N}, pre: P, post: N},
		{name: "wrap before start", position: -1, wrap: true, items: []Role{N, N, N, C}, pre: C, post: N},
		{name: "wrap past end", position: 4, wrap: true, items: []Role{C, P, P, P}, pre: P, post: C},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, pre, post := presentItems(true, tt.position, 4, 1, 1, tt.wrap)
			if !slices.Equal(items, tt.items) {
				t.Fatalf("items = %v, want %v", items, tt.items)
			}
			if pre != tt.pre || post != tt.post {
				t.Fatalf("clones = %v/%v, want %v/%v", pre, post, tt.pre, tt.post)
			}
		})
	}
}

func TestPresentationClasses(t *testing.T) {
	p := Presentation{
		Buttons: Buttons{Enabled: true, PrevDisabled: true},
		Pager:   Pager{Enabled: true, Count: 3, Selected: 1},
		Items:   []Role{RoleCurrent, RoleNext},
		Pre:     RolePrevious,
		Post:    RoleCurrent,
		classes: DefaultClasses(),
	}
	if got := p.ItemClass(0); got != "current" {
		t.Fatalf("item class = %q", got)
	}
	if got := p.ItemClass(5); got != "" {
		t.Fatalf("out of range item class = %q", got)
	}
	if got := p.CloneClass(GroupPost); got != "clone post current" {
		t.Fatalf("clone class = %q", got)
	}
	if got := p.PrevButtonClass(); got != "disabled" {
		t.Fatalf("prev class = %q", got)
	}
	if got := p.NextButtonClass(); got != "" {
		t.Fatalf("next class = %q", got)
	}
	if p.PagerClass(1) != "selected" || p.PagerClass(0) != "" {
		t.Fatalf("pager classes wrong")
	}

	c := p.clone()
	c.Items[0] = RoleNone
	if p.Items[0] != RoleCurrent {
		t.Fatalf("clone shares item roles")
	}
}
