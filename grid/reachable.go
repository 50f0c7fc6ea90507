package grid

import "github.com/zyedidia/generic/mapset"

// ReachableFrom returns every cell connected to from through passable
// 4-connected moves, including from itself, in breadth-first order.
// A barrier or out-of-bounds origin yields nil.
//
// Time:   O(side²).
// Memory: O(side²) for the visited set and output.
func (g *Grid) ReachableFrom(from Coord) []Coord {
	if g.State(from) == Barrier {
		return nil
	}
	seen := mapset.New[Coord]()
	seen.Put(from)
	queue := []Coord{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Connected reports whether a path of passable cells joins a and b.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(b) {
		return false
	}
	for _, c := range g.ReachableFrom(a) {
		if c == b {
			return true
		}
	}

	return false
}
