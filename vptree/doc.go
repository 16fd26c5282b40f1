// Package vptree implements a vantage-point tree: an immutable index over an
// arbitrary metric space answering exact k-nearest-neighbour queries.
//
// A tree is built once from a snapshot of the items with Build and is never
// mutated afterwards, so a single Tree can serve concurrent Search calls.
// Search walks the tree closest partition first and skips any subtree whose
// distance band cannot hold a point closer than the current k-th best, using
// the triangle inequality.
//
// The distance function must be a true metric. Squared Euclidean distance
// does not satisfy the triangle inequality and yields wrong results.
package vptree
