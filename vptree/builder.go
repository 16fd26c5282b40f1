package vptree

import "math/rand/v2"

// builder owns the working copy of the items for the duration of Build.
// dists[i] caches the distance from the current vantage point to items[i]
// and moves in lockstep with items.
type builder[T comparable] struct {
	items    []T
	dists    []float64
	distance DistanceFunc[T]
	rng      *rand.Rand
}

func (b *builder[T]) swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
	b.dists[i], b.dists[j] = b.dists[j], b.dists[i]
}

// build partitions items[start:end) and returns its root.
func (b *builder[T]) build(start, end int) *node {
	switch end - start {
	case 0:
		return nil
	case 1:
		return &node{index: start}
	}
	b.swap(start, start+b.rng.IntN(end-start))
	pivot := b.items[start]
	for i := start + 1; i < end; i++ {
		b.dists[i] = b.distance(pivot, b.items[i])
	}
	median := (start + end) / 2
	b.selectNth(start+1, end, median)
	n := &node{index: start, radius: b.dists[median]}
	n.left = b.build(start+1, median)
	n.right = b.build(median, end)
	return n
}

// selectNth reorders [lo, hi) so that position nth holds the value it would
// have if the range were sorted by distance, with nothing farther before it
// and nothing closer after it. Elements equal to the nth distance may land on
// either side of nth.
func (b *builder[T]) selectNth(lo, hi, nth int) {
	for hi-lo > 1 {
		lt, gt := b.partition(lo, hi, lo+b.rng.IntN(hi-lo))
		switch {
		case nth < lt:
			hi = lt
		case nth >= gt:
			lo = gt
		default:
			return
		}
	}
}

// partition splits [lo, hi) around the distance at p into closer, equal and
// farther bands and returns the bounds [lt, gt) of the equal band.
func (b *builder[T]) partition(lo, hi, p int) (lt, gt int) {
	pivot := b.dists[p]
	lt, gt = lo, hi
	for i := lo; i < gt; {
		switch d := b.dists[i]; {
		case d < pivot:
			b.swap(lt, i)
			lt++
			i++
		case d > pivot:
			gt--
			b.swap(i, gt)
		default:
			i++
		}
	}
	return lt, gt
}
