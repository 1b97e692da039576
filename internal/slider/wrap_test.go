package slider

import (
	"slices"
	"testing"
)

func TestBuildClones(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	pre, post := BuildClones(items, 2, Horizontal)

	var preItems, postItems []string
	for _, c := range pre {
		if c.Group != GroupPre || c.Item != items[c.Source] {
			t.Fatalf("bad pre clone %+v", c)
		}
		preItems = append(preItems, c.Item)
	}
	for _, c := range post {
		if c.Group != GroupPost || c.Item != items[c.Source] {
			t.Fatalf("bad post clone %+v", c)
		}
		postItems = append(postItems, c.Item)
	}
	if want := []string{"d", "e"}; !slices.Equal(preItems, want) {
		t.Fatalf("pre = %v, want %v", preItems, want)
	}
	if want := []string{"a", "b"}; !slices.Equal(postItems, want) {
		t.Fatalf("post = %v, want %v", postItems, want)
	}
}

func TestBuildClonesNeedsOverflow(t *testing.T) {
	pre, post := BuildClones([]int{1, 2}, 2, Vertical)
	if pre != nil || post != nil {
		t.Fatalf("clones built without overflow: %v %v", pre, post)
	}
}

func TestStripSlots(t *testing.T) {
	s := newStrip(4, 1, true)
	want := []Slot{
		{Index: 3, Group: GroupPre},
		{Index: 0},
		{Index: 1},
		{Index: 2},
		{Index: 3},
		{Index: 0, Group: GroupPost},
	}
	if got := s.Slots(); !slices.Equal(got, want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
	if !s.Slot(0).Clone() || s.Slot(1).Clone() {
		t.Fatalf("clone flags wrong")
	}

	plain := newStrip(4, 1, false)
	if plain.Len() != 4 || plain.Clones() != 0 {
		t.Fatalf("plain strip = %d slots, %d clones", plain.Len(), plain.Clones())
	}
}

func TestStripMatchesBuildClones(t *testing.T) {
	items := []int{10, 11, 12, 13, 14, 15}
	pre, post := BuildClones(items, 3, Horizontal)
	s := newStrip(len(items), 3, true)

	for i, c := range pre {
		if got := s.Slot(i); got.Index != c.Source || got.Group != GroupPre {
			t.Fatalf("slot %d = %+v, want pre clone of %d", i, got, c.Source)
		}
	}
	for i, c := range post {
		idx := s.Clones() + len(items) + i
		if got := s.Slot(idx); got.Index != c.Source || got.Group != GroupPost {
			t.Fatalf("slot %d = %+v, want post clone of %d", idx, got, c.Source)
		}
	}
}
