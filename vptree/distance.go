package vptree

// DistanceFunc computes the distance between two items. It must be a metric:
// non-negative, symmetric, zero for identical items and satisfying
// d(a, c) <= d(a, b) + d(b, c).
type DistanceFunc[T any] func(a, b T) float64
