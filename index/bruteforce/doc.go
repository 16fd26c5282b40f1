// Package bruteforce provides an exhaustive vector index that answers kNN
// queries by measuring the Euclidean distance to every vector. It is the
// reference other indexes are checked against and owns the compact binary
// format used to persist indexed data.
package bruteforce
