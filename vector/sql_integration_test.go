package vector

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vptree/engine"
)

// TestSQLOrderByVecL2MatchesSimilaritySearch checks that ordering the docs
// table by the vec_l2 SQL function agrees with the store's index search.
func TestSQLOrderByVecL2MatchesSimilaritySearch(t *testing.T) {
	require.NoError(t, engine.RegisterVectorFunctions())
	db, store := openStore(t)
	ctx := context.Background()

	rng := rand.New(rand.NewPCG(21, 34))
	var docs []Document
	for i := 0; i < 200; i++ {
		docs = append(docs, Document{
			ID:        fmt.Sprintf("d%03d", i),
			Embedding: []float32{rng.Float32(), rng.Float32(), rng.Float32()},
		})
	}
	_, err := store.AddDocuments(ctx, docs)
	require.NoError(t, err)

	query := []float32{0.5, 0.25, 0.75}
	blob, err := EncodeEmbedding(query)
	require.NoError(t, err)
	rows, err := db.Query(`SELECT id FROM docs ORDER BY vec_l2(embedding, ?) LIMIT 10`, blob)
	require.NoError(t, err)
	var sqlIDs []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		sqlIDs = append(sqlIDs, id)
	}
	require.NoError(t, rows.Err())
	rows.Close()

	out, err := store.SimilaritySearch(ctx, query, 10)
	require.NoError(t, err)
	assert.Equal(t, sqlIDs, docIDs(out))
}
