package vptree

import (
	"math"
	"math/bits"
)

// Queue is a bounded double-ended priority queue of Neighbors ordered by
// distance. It keeps at most Cap() entries and gives O(1) access to both the
// closest and the farthest one, which lets a search read its pruning bound
// and evict the worst candidate without giving up an ascending drain.
//
// The backing store is a binary min-max heap: nodes on even levels are no
// larger than their descendants, nodes on odd levels are no smaller.
type Queue struct {
	items    []Neighbor
	capacity int
}

// NewQueue creates a queue retaining at most k neighbors. A negative k is
// treated as zero.
func NewQueue(k int) *Queue {
	if k < 0 {
		k = 0
	}
	return &Queue{items: make([]Neighbor, 0, min(k, 1024)), capacity: k}
}

// Len returns the number of queued neighbors.
func (q *Queue) Len() int { return len(q.items) }

// Cap returns the maximum number of neighbors the queue retains.
func (q *Queue) Cap() int { return q.capacity }

// Full reports whether the queue holds Cap() neighbors.
func (q *Queue) Full() bool { return len(q.items) >= q.capacity }

// Push inserts n unconditionally. It panics when the queue is full; callers
// check Full first or use PushPopMax.
func (q *Queue) Push(n Neighbor) {
	if q.Full() {
		panic("vptree: push to a full queue")
	}
	q.items = append(q.items, n)
	q.up(len(q.items) - 1)
}

// PushPopMax inserts n while keeping the queue bounded. When the queue is
// full, n replaces the current maximum only if it is strictly closer;
// otherwise n is dropped. It reports whether n was kept.
func (q *Queue) PushPopMax(n Neighbor) bool {
	if !q.Full() {
		q.Push(n)
		return true
	}
	top, ok := q.PeekMax()
	if !ok || n.Distance >= top.Distance {
		return false
	}
	q.PopMax()
	q.Push(n)
	return true
}

// PeekMin returns the closest neighbor.
func (q *Queue) PeekMin() (Neighbor, bool) {
	if len(q.items) == 0 {
		return Neighbor{}, false
	}
	return q.items[0], true
}

// PeekMax returns the farthest neighbor.
func (q *Queue) PeekMax() (Neighbor, bool) {
	if len(q.items) == 0 {
		return Neighbor{}, false
	}
	return q.items[q.maxIndex()], true
}

// Tau returns the pruning bound: the distance of the farthest kept neighbor
// once the queue is full, and +Inf while it still has room.
func (q *Queue) Tau() float64 {
	if !q.Full() || len(q.items) == 0 {
		return math.Inf(1)
	}
	return q.items[q.maxIndex()].Distance
}

// PopMin removes and returns the closest neighbor.
func (q *Queue) PopMin() (Neighbor, bool) {
	if len(q.items) == 0 {
		return Neighbor{}, false
	}
	return q.removeAt(0), true
}

// PopMax removes and returns the farthest neighbor.
func (q *Queue) PopMax() (Neighbor, bool) {
	if len(q.items) == 0 {
		return Neighbor{}, false
	}
	return q.removeAt(q.maxIndex()), true
}

// DrainAscending empties the queue and returns its content ordered by
// increasing distance.
func (q *Queue) DrainAscending() []Neighbor {
	out := make([]Neighbor, 0, len(q.items))
	for len(q.items) > 0 {
		n, _ := q.PopMin()
		out = append(out, n)
	}
	return out
}

func (q *Queue) maxIndex() int {
	switch len(q.items) {
	case 1:
		return 0
	case 2:
		return 1
	}
	if q.items[1].Distance >= q.items[2].Distance {
		return 1
	}
	return 2
}

func (q *Queue) removeAt(i int) Neighbor {
	last := len(q.items) - 1
	removed := q.items[i]
	q.items[i] = q.items[last]
	q.items = q.items[:last]
	if i < last {
		q.down(i)
	}
	return removed
}

func isMinLevel(i int) bool {
	return (bits.Len(uint(i+1))-1)%2 == 0
}

func (q *Queue) less(i, j int) bool    { return q.items[i].Distance < q.items[j].Distance }
func (q *Queue) greater(i, j int) bool { return q.items[i].Distance > q.items[j].Distance }
func (q *Queue) swap(i, j int)         { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *Queue) up(i int) {
	if i == 0 {
		return
	}
	parent := (i - 1) / 2
	if isMinLevel(i) {
		if q.greater(i, parent) {
			q.swap(i, parent)
			q.upWith(parent, q.greater)
			return
		}
		q.upWith(i, q.less)
		return
	}
	if q.less(i, parent) {
		q.swap(i, parent)
		q.upWith(parent, q.less)
		return
	}
	q.upWith(i, q.greater)
}

// upWith bubbles i towards the root along grandparents while before(i, gp).
func (q *Queue) upWith(i int, before func(i, j int) bool) {
	for i >= 3 {
		gp := ((i-1)/2 - 1) / 2
		if !before(i, gp) {
			return
		}
		q.swap(i, gp)
		i = gp
	}
}

func (q *Queue) down(i int) {
	if isMinLevel(i) {
		q.downWith(i, q.less)
		return
	}
	q.downWith(i, q.greater)
}

// downWith restores the heap below i, where before is less on min levels and
// greater on max levels.
func (q *Queue) downWith(i int, before func(i, j int) bool) {
	n := len(q.items)
	for {
		first := 2*i + 1
		if first >= n {
			return
		}
		// best among children and grandchildren
		m := first
		for _, c := range [...]int{2*i + 2, 4*i + 3, 4*i + 4, 4*i + 5, 4*i + 6} {
			if c < n && before(c, m) {
				m = c
			}
		}
		if m <= 2*i+2 {
			if before(m, i) {
				q.swap(m, i)
			}
			return
		}
		if !before(m, i) {
			return
		}
		q.swap(m, i)
		if parent := (m - 1) / 2; before(parent, m) {
			q.swap(m, parent)
		}
		i = m
	}
}
