package vp

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vptree/index"
	"github.com/viant/vptree/index/bruteforce"
)

func randomVectors(rng *rand.Rand, n, dim int) ([]string, [][]float32) {
	ids := make([]string, n)
	vecs := make([][]float32, n)
	for i := range vecs {
		ids[i] = fmt.Sprintf("doc-%d", i)
		vecs[i] = make([]float32, dim)
		for j := range vecs[i] {
			vecs[i][j] = rng.Float32()*2 - 1
		}
	}
	return ids, vecs
}

func TestIndex_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	ids, vecs := randomVectors(rng, 700, 6)

	tree := New(WithSeed(3))
	require.NoError(t, tree.Build(ids, vecs))
	oracle := &bruteforce.Index{}
	require.NoError(t, oracle.Build(ids, vecs))
	assert.Equal(t, len(ids), tree.Len())

	_, queries := randomVectors(rng, 50, 6)
	for _, k := range []int{1, 10, 50} {
		for _, q := range queries {
			wantIDs, wantDist, err := oracle.Query(q, k)
			require.NoError(t, err)
			gotIDs, gotDist, err := tree.Query(q, k)
			require.NoError(t, err)
			assert.Equal(t, wantIDs, gotIDs)
			assert.Equal(t, wantDist, gotDist)
		}
	}
}

func TestIndex_StoredVectorIsItsOwnNearest(t *testing.T) {
	ids, vecs := randomVectors(rand.New(rand.NewPCG(1, 1)), 100, 4)
	idx := New()
	require.NoError(t, idx.Build(ids, vecs))

	gotIDs, gotDist, err := idx.Query(append([]float32(nil), vecs[17]...), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-17"}, gotIDs)
	assert.Equal(t, []float64{0}, gotDist)

	all, _, err := idx.Query(vecs[0], 0)
	require.NoError(t, err)
	assert.Len(t, all, len(ids))
}

func TestIndex_Errors(t *testing.T) {
	idx := New()
	gotIDs, gotDist, err := idx.Query([]float32{1, 2}, 3)
	require.NoError(t, err)
	assert.Nil(t, gotIDs)
	assert.Nil(t, gotDist)

	assert.ErrorIs(t, idx.Build([]string{"a"}, nil), index.ErrLengthMismatch)
	require.NoError(t, idx.Build([]string{"a", "b"}, [][]float32{{0, 0}, {1, 1}}))
	_, _, err = idx.Query([]float32{0, 0, 0}, 1)
	assert.ErrorIs(t, err, index.ErrDimensionMismatch)
}

func TestIndex_MarshalRebuilds(t *testing.T) {
	ids, vecs := randomVectors(rand.New(rand.NewPCG(2, 2)), 200, 3)
	src := New()
	require.NoError(t, src.Build(ids, vecs))
	data, err := src.MarshalBinary()
	require.NoError(t, err)

	dst := New()
	require.NoError(t, dst.UnmarshalBinary(data))
	require.Equal(t, src.Len(), dst.Len())

	q := []float32{0.1, -0.2, 0.3}
	wantIDs, wantDist, err := src.Query(q, 8)
	require.NoError(t, err)
	gotIDs, gotDist, err := dst.Query(q, 8)
	require.NoError(t, err)
	assert.Equal(t, wantIDs, gotIDs)
	assert.Equal(t, wantDist, gotDist)

	assert.Error(t, dst.UnmarshalBinary([]byte{1, 2}))
}
