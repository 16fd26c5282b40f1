package vptree

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scalar struct {
	id    int
	value float64
}

func scalarDistance(a, b scalar) float64 { return math.Abs(a.value - b.value) }

func subtree(n *node, out []int) []int {
	if n == nil {
		return out
	}
	out = append(out, n.index)
	out = subtree(n.left, out)
	return subtree(n.right, out)
}

func checkInvariant(t *testing.T, tree *Tree[scalar], n *node) {
	t.Helper()
	if n == nil {
		return
	}
	if n.isLeaf() {
		assert.Zero(t, n.radius)
		return
	}
	pivot := tree.items[n.index]
	for _, i := range subtree(n.left, nil) {
		assert.LessOrEqual(t, tree.distance(pivot, tree.items[i]), n.radius)
	}
	for _, i := range subtree(n.right, nil) {
		assert.GreaterOrEqual(t, tree.distance(pivot, tree.items[i]), n.radius)
	}
	checkInvariant(t, tree, n.left)
	checkInvariant(t, tree, n.right)
}

func TestBuild_NodeInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	testCases := []struct {
		name   string
		values func(i int) float64
	}{
		{name: "uniform", values: func(int) float64 { return rng.Float64() * 1000 }},
		{name: "sorted", values: func(i int) float64 { return float64(i) }},
		{name: "heavy ties", values: func(int) float64 { return float64(rng.IntN(4)) }},
		{name: "all equal", values: func(int) float64 { return 42 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]scalar, 300)
			for i := range items {
				items[i] = scalar{id: i, value: tc.values(i)}
			}
			tree := Build(items, scalarDistance, WithSeed(9))
			require.Equal(t, len(items), tree.Len())

			// every position is owned by exactly one node
			positions := subtree(tree.root, nil)
			require.Len(t, positions, len(items))
			seen := make(map[int]bool)
			for _, p := range positions {
				require.False(t, seen[p], "position %d reached twice", p)
				seen[p] = true
			}
			checkInvariant(t, tree, tree.root)
		})
	}
}

func TestBuild_ExpectedBalance(t *testing.T) {
	items := make([]scalar, 1<<12)
	for i := range items {
		items[i] = scalar{id: i, value: float64(i)}
	}
	tree := Build(items, scalarDistance, WithSeed(5))
	// median splits keep height logarithmic regardless of input order
	assert.LessOrEqual(t, tree.Height(), 14)
}

func TestSelectNth(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(40)
		b := &builder[scalar]{items: make([]scalar, n), dists: make([]float64, n), rng: rng}
		for i := range b.dists {
			b.dists[i] = float64(rng.IntN(10))
		}
		nth := rng.IntN(n)
		b.selectNth(0, n, nth)
		for i := 0; i < nth; i++ {
			require.LessOrEqual(t, b.dists[i], b.dists[nth])
		}
		for i := nth + 1; i < n; i++ {
			require.GreaterOrEqual(t, b.dists[i], b.dists[nth])
		}
	}
}
