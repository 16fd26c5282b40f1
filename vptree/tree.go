package vptree

import "slices"

// Tree is an immutable vantage-point tree over items of type T. Items are
// compared with == to exclude a query that is itself stored in the tree.
type Tree[T comparable] struct {
	root     *node
	items    []T
	distance DistanceFunc[T]
}

// Build constructs a tree over a copy of items. The caller's slice is left
// untouched; the tree keeps its own permuted copy. Vantage points are chosen
// at random, see WithSeed and WithRand for reproducible shapes.
func Build[T comparable](items []T, distance DistanceFunc[T], opts ...Option) *Tree[T] {
	o := newOptions(opts)
	b := &builder[T]{
		items:    slices.Clone(items),
		dists:    make([]float64, len(items)),
		distance: distance,
		rng:      o.rng,
	}
	root := b.build(0, len(b.items))
	return &Tree[T]{root: root, items: b.items, distance: distance}
}

// Len returns the number of items stored in the tree.
func (t *Tree[T]) Len() int { return len(t.items) }

// Items returns a copy of the stored items in tree order.
func (t *Tree[T]) Items() []T { return slices.Clone(t.items) }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int { return t.root.height() }

// Search returns up to k stored items closest to target, ordered by
// ascending distance. A stored item equal to target is never returned.
// Fewer than k results come back when the tree holds fewer candidates.
func (t *Tree[T]) Search(target T, k int) []Result[T] {
	results, _ := t.SearchWithStats(target, k)
	return results
}

// SearchWithStats is Search that also reports how many nodes were visited.
func (t *Tree[T]) SearchWithStats(target T, k int) ([]Result[T], Stats) {
	if k <= 0 || t.root == nil {
		return []Result[T]{}, Stats{}
	}
	s := &searcher[T]{tree: t, target: target, queue: NewQueue(min(k, len(t.items)))}
	s.search(t.root)
	neighbors := s.queue.DrainAscending()
	results := make([]Result[T], len(neighbors))
	for i, n := range neighbors {
		results[i] = Result[T]{Item: t.items[n.Index], Distance: n.Distance}
	}
	return results, s.stats
}

// searcher carries the state of one query.
type searcher[T comparable] struct {
	tree   *Tree[T]
	target T
	queue  *Queue
	stats  Stats
}

func (s *searcher[T]) search(n *node) {
	if n == nil {
		return
	}
	s.stats.Visited++
	pivot := s.tree.items[n.index]
	d := s.tree.distance(pivot, s.target)
	s.stats.DistanceCalls++
	if d <= s.queue.Tau() && pivot != s.target {
		s.queue.PushPopMax(Neighbor{Index: n.index, Distance: d})
	}
	if n.isLeaf() {
		return
	}
	// Closer side first: it tightens tau before the far side is tested.
	if d <= n.radius {
		if d-s.queue.Tau() <= n.radius {
			s.search(n.left)
		}
		if d+s.queue.Tau() >= n.radius {
			s.search(n.right)
		}
		return
	}
	if d+s.queue.Tau() >= n.radius {
		s.search(n.right)
	}
	if d-s.queue.Tau() <= n.radius {
		s.search(n.left)
	}
}
