// Package frontier implements the min-priority queue that orders candidate
// cells by tentative distance during a shortest-path search.
//
// Entries are ordered lexicographically by (distance, sequence), where
// sequence is a monotonically increasing insertion counter. Among equal
// distances the earliest insertion wins, so a search over identical input
// always dequeues in the same order.
//
// Decrease-key is performed by re-insertion ("lazy decrease-key"): a
// cheaper copy of an item is pushed and the older, more expensive copy
// stays in the heap until popped. PopMin returns the distance recorded at
// push time so callers can recognise and discard such stale copies.
//
// Complexity:
//
//   - Push, PopMin: O(log N), N ≤ pushes so far.
//   - Contains, Len: O(1).
package frontier

import (
	"container/heap"
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// ErrEmptyFrontier is returned by PopMin when no entries remain.
var ErrEmptyFrontier = errors.New("frontier: empty")

// entry is a single heap slot.
type entry[T comparable] struct {
	dist int    // tentative distance at push time
	seq  uint64 // insertion order
	item T
}

// entryHeap is a min-heap of entries ordered by (dist, seq).
type entryHeap[T comparable] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by distance, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Frontier is a min-priority queue of items with O(1) membership tests.
// The zero value is not usable; call New.
type Frontier[T comparable] struct {
	heap    entryHeap[T]
	members mapset.Set[T]
	seq     uint64
}

// New returns an empty Frontier with room for capacity entries.
func New[T comparable](capacity int) *Frontier[T] {
	return &Frontier[T]{
		heap:    make(entryHeap[T], 0, capacity),
		members: mapset.New[T](),
	}
}

// Push inserts item with the given tentative distance under the next
// sequence number and records it as a member. Pushing an item already
// present adds a second entry; the cheaper one is popped first.
func (f *Frontier[T]) Push(dist int, item T) {
	f.seq++
	heap.Push(&f.heap, entry[T]{dist: dist, seq: f.seq, item: item})
	f.members.Put(item)
}

// PopMin removes and returns the entry with the smallest (distance,
// sequence) pair along with the distance it was pushed with. The item
// leaves the membership set. Returns ErrEmptyFrontier if nothing remains.
func (f *Frontier[T]) PopMin() (T, int, error) {
	if len(f.heap) == 0 {
		var zero T
		return zero, 0, ErrEmptyFrontier
	}
	e := heap.Pop(&f.heap).(entry[T])
	f.members.Remove(e.item)

	return e.item, e.dist, nil
}

// Contains reports whether item was pushed and has not been popped since.
func (f *Frontier[T]) Contains(item T) bool {
	return f.members.Has(item)
}

// Len returns the number of heap entries, stale copies included.
func (f *Frontier[T]) Len() int { return len(f.heap) }

// Empty reports whether no entries remain.
func (f *Frontier[T]) Empty() bool { return len(f.heap) == 0 }

// Reset drops every entry and restarts the sequence counter.
func (f *Frontier[T]) Reset() {
	f.heap = f.heap[:0]
	f.members = mapset.New[T]()
	f.seq = 0
}
