package vector

import (
	"context"
	"database/sql"
)

const docsSchema = `
CREATE TABLE IF NOT EXISTS docs (
    id TEXT PRIMARY KEY,
    content TEXT,
    meta TEXT,
    embedding BLOB
);
`

// EnsureSchema creates the docs table in the provided database if it does
// not already exist. Rows with a non-empty embedding are the source of the
// vantage-point index SQLiteStore builds for SimilaritySearch.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, docsSchema)
	return err
}
