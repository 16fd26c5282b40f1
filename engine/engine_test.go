package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenInMemory verifies that an in-memory database opens through the
// modernc.org/sqlite driver and accepts statements.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE points(id INTEGER PRIMARY KEY, x INTEGER, y INTEGER)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO points(x, y) VALUES (0, 0), (3, 4)")
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM points").Scan(&n))
	assert.Equal(t, 2, n)
}
