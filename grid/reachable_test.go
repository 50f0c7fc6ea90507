package grid

import (
	"sort"
	"testing"
)

// TestReachableFrom_Enclosed checks a walled-off pocket is excluded.
//
// Layout:
//
//	S . # .
//	. . # .
//	# # # .
//	. . . E
//
// Expected: 4 cells reachable from S; E is not among them.
func TestReachableFrom_Enclosed(t *testing.T) {
	g, err := ParseString(`
		S.#.
		..#.
		###.
		...E
	`, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	got := g.ReachableFrom(Coord{})
	if len(got) != 4 {
		t.Fatalf("reachable = %v; want 4 cells", got)
	}
	if got[0] != (Coord{}) {
		t.Errorf("first reachable = %v; want origin", got[0])
	}
	idx := make([]int, len(got))
	for i, c := range got {
		idx[i] = g.index(c)
	}
	sort.Ints(idx)
	want := []int{0, 1, 4, 5}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("reachable indices = %v; want %v", idx, want)
		}
	}
	if g.Connected(Coord{}, Coord{Row: 3, Col: 3}) {
		t.Error("Connected(S, E) = true; want false")
	}
	if !g.Connected(Coord{Row: 0, Col: 3}, Coord{Row: 3, Col: 0}) {
		t.Error("Connected((0,3), (3,0)) = false; want true")
	}
}

// TestReachableFrom_Barrier checks a barrier or out-of-bounds origin reaches nothing.
func TestReachableFrom_Barrier(t *testing.T) {
	g, err := ParseString("#.\n..", DefaultOptions())
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := g.ReachableFrom(Coord{}); got != nil {
		t.Errorf("ReachableFrom(barrier) = %v; want nil", got)
	}
	if got := g.ReachableFrom(Coord{Row: 7}); got != nil {
		t.Errorf("ReachableFrom(out of bounds) = %v; want nil", got)
	}
	if got := len(g.ReachableFrom(Coord{Row: 1, Col: 1})); got != 3 {
		t.Errorf("reachable count = %d; want 3", got)
	}
}
