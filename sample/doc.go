// Package sample provides the synthetic data used to exercise and measure
// vptree: integer 2-D points, their Euclidean metric, an exhaustive k-NN
// search that serves as the correctness oracle, and SQLite persistence so a
// generated set can be replayed.
package sample
