// Package index defines a minimal abstraction for embedding indexes that are
// built from (id, vector) pairs, queried for exact kNN under Euclidean
// distance, and serialized for persistence. Implementations in this module
// are a brute-force baseline and a vantage-point tree.
package index
