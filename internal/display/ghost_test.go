package display

import (
	"testing"

	"github.com/sankalp-v/gravview/internal/boundary"
)

func periodicLookup(box boundary.Box) func(i, j, k int, t float64) boundary.Shift {
	c := boundary.Conditions{Type: boundary.Periodic, Box: box}
	return func(i, j, k int, t float64) boundary.Shift { return c.Ghost(i, j, k, t) }
}

func TestGhostImagesDisabled(t *testing.T) {
	lookup := periodicLookup(boundary.Box{X: 1, Y: 1, Z: 1})
	for _, counts := range [][3]int{{0, 0, 0}, {1, 1, 1}, {5, 2, 9}} {
		images := GhostImages(false, counts[0], counts[1], counts[2], 0, lookup)
		if len(images) != 1 {
			t.Fatalf("counts %v: got %d images, want exactly 1", counts, len(images))
		}
		if images[0].Pos.Len() != 0 {
			t.Errorf("counts %v: the single image must be the identity shift", counts)
		}
	}
}

func TestGhostImagesEnabled(t *testing.T) {
	lookup := periodicLookup(boundary.Box{X: 1, Y: 1, Z: 1})
	cases := []struct {
		counts [3]int
		want   int
	}{
		{[3]int{0, 0, 0}, 1},
		{[3]int{1, 0, 0}, 3},
		{[3]int{1, 1, 0}, 9},
		{[3]int{1, 1, 1}, 27},
		{[3]int{2, 1, 1}, 45},
	}
	for _, tc := range cases {
		images := GhostImages(true, tc.counts[0], tc.counts[1], tc.counts[2], 0, lookup)
		if len(images) != tc.want {
			t.Errorf("counts %v: got %d images, want %d", tc.counts, len(images), tc.want)
		}
	}
}

func TestGhostImagesPassShiftsThrough(t *testing.T) {
	// The renderer untranslates with the identical value it translated
	// by, so shifts must come through the lookup untouched.
	var calls [][3]int
	lookup := func(i, j, k int, t float64) boundary.Shift {
		calls = append(calls, [3]int{i, j, k})
		return boundary.Shift{}
	}
	GhostImages(true, 1, 1, 1, 0, lookup)
	if len(calls) != 27 {
		t.Fatalf("lookup called %d times, want 27", len(calls))
	}
	if calls[0] != [3]int{-1, -1, -1} || calls[26] != [3]int{1, 1, 1} {
		t.Errorf("unexpected corner indices %v .. %v", calls[0], calls[26])
	}
}
