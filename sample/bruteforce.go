package sample

import "github.com/viant/vptree/vptree"

// BruteForce scans every point and returns the k closest to target in
// ascending distance order, skipping target itself. It is O(n log k) and
// exists to validate and benchmark the tree.
func BruteForce(points []Point, target Point, k int) []vptree.Result[Point] {
	if k <= 0 {
		return []vptree.Result[Point]{}
	}
	queue := vptree.NewQueue(min(k, len(points)))
	for i, p := range points {
		if p == target {
			continue
		}
		queue.PushPopMax(vptree.Neighbor{Index: i, Distance: Distance(p, target)})
	}
	neighbors := queue.DrainAscending()
	out := make([]vptree.Result[Point], len(neighbors))
	for i, n := range neighbors {
		out[i] = vptree.Result[Point]{Item: points[n.Index], Distance: n.Distance}
	}
	return out
}
