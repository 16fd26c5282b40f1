// Package vp provides an exact Euclidean kNN index over embeddings backed by
// a vantage-point tree. Only ids and vectors are persisted, using the
// brute-force binary format; the tree is rebuilt on load.
package vp
