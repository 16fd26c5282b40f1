package bruteforce

import (
	"fmt"

	"github.com/viant/vec/search"
	"github.com/viant/vptree/index"
	"github.com/viant/vptree/vptree"
)

// Index is an exhaustive Euclidean kNN index.
type Index struct {
	ids  []string
	vecs [][]float32
	dim  int
}

// Build loads ids and vectors.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	dim, err := Validate(ids, vectors)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	return nil
}

// Validate checks that ids and vectors pair up and share one dimension, which
// it returns.
func Validate(ids []string, vectors [][]float32) (int, error) {
	if len(ids) != len(vectors) {
		return 0, fmt.Errorf("bruteforce: %d ids, %d vectors: %w", len(ids), len(vectors), index.ErrLengthMismatch)
	}
	if len(vectors) == 0 {
		return 0, nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return 0, fmt.Errorf("bruteforce: vector %d has dim %d, want %d: %w", j, len(vectors[j]), dim, index.ErrDimensionMismatch)
		}
	}
	return dim, nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// IDs returns the indexed ids in insertion order.
func (i *Index) IDs() []string { return i.ids }

// Vectors returns the indexed vectors in insertion order.
func (i *Index) Vectors() [][]float32 { return i.vecs }

// Query returns the k closest ids by Euclidean distance, closest first.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d: %w", len(query), i.dim, index.ErrDimensionMismatch)
	}
	if k <= 0 || k > len(i.vecs) {
		k = len(i.vecs)
	}
	queue := vptree.NewQueue(k)
	q := search.Float32s(query)
	for j, vec := range i.vecs {
		queue.PushPopMax(vptree.Neighbor{Index: j, Distance: float64(q.EuclideanDistance(vec))})
	}
	neighbors := queue.DrainAscending()
	ids := make([]string, len(neighbors))
	distances := make([]float64, len(neighbors))
	for n, nb := range neighbors {
		ids[n] = i.ids[nb.Index]
		distances[n] = nb.Distance
	}
	return ids, distances, nil
}

var _ index.Index = (*Index)(nil)
