package vptree

// Neighbor is a candidate kept by a Queue: a position in the tree's item
// array and its distance to the query.
type Neighbor struct {
	Index    int
	Distance float64
}

// Result is a single search hit.
type Result[T any] struct {
	Item     T
	Distance float64
}

// Stats reports how much of the tree a search touched.
type Stats struct {
	// Visited counts nodes entered by the search.
	Visited int
	// DistanceCalls counts evaluations of the distance function.
	DistanceCalls int
}
