package index

import "errors"

var (
	// ErrLengthMismatch reports ids and vectors of different lengths.
	ErrLengthMismatch = errors.New("index: ids/vectors length mismatch")
	// ErrDimensionMismatch reports a vector whose length differs from the index dimension.
	ErrDimensionMismatch = errors.New("index: dimension mismatch")
)

// Index defines a generic vector index with basic lifecycle methods.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length and all vectors the same dimension.
	Build(ids []string, vectors [][]float32) error

	// Query runs a kNN search with the provided query vector and returns up
	// to k matches as parallel slices of ids and Euclidean distances, closest
	// first. When k <= 0 every indexed vector is returned.
	Query(query []float32, k int) (ids []string, distances []float64, err error)

	// Len returns the number of indexed vectors.
	Len() int

	// MarshalBinary serializes the indexed data into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}
