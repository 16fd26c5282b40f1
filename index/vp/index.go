package vp

import (
	"fmt"

	"github.com/viant/vec/search"
	"github.com/viant/vptree/index"
	"github.com/viant/vptree/index/bruteforce"
	"github.com/viant/vptree/vptree"
)

// Index implements index.Index on top of a vantage-point tree.
type Index struct {
	ids       []string
	vecs      [][]float32
	dim       int
	tree      *vptree.Tree[*entry]
	buildOpts []vptree.Option
}

// entry is the tree item. Entries are compared by pointer, so a query never
// matches a stored vector even when their coordinates are equal.
type entry struct {
	pos int
	vec search.Float32s
}

func euclidean(a, b *entry) float64 {
	return float64(a.vec.EuclideanDistance(b.vec))
}

// New creates an empty index.
func New(opts ...Option) *Index {
	i := &Index{}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Build constructs the tree over the given vectors.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	dim, err := bruteforce.Validate(ids, vectors)
	if err != nil {
		return fmt.Errorf("vp: %w", err)
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	entries := make([]*entry, len(vectors))
	for j, vec := range vectors {
		entries[j] = &entry{pos: j, vec: vec}
	}
	i.tree = vptree.Build(entries, euclidean, i.buildOpts...)
	return nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Query returns up to k ids ordered by increasing Euclidean distance.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.tree == nil || i.tree.Len() == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("vp: query dim %d != index dim %d: %w", len(query), i.dim, index.ErrDimensionMismatch)
	}
	if k <= 0 {
		k = i.tree.Len()
	}
	results := i.tree.Search(&entry{pos: -1, vec: query}, k)
	ids := make([]string, len(results))
	distances := make([]float64, len(results))
	for n, r := range results {
		ids[n] = i.ids[r.Item.pos]
		distances[n] = r.Distance
	}
	return ids, distances, nil
}

// MarshalBinary writes the indexed ids and vectors in the brute-force format.
func (i *Index) MarshalBinary() ([]byte, error) {
	return bruteforce.Encode(i.ids, i.vecs, i.dim), nil
}

// UnmarshalBinary loads ids and vectors and rebuilds the tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := bruteforce.Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}

var _ index.Index = (*Index)(nil)
