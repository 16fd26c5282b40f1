package vector

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/viant/vptree/index/vp"
)

// SQLiteStore is a Store backed by a SQLite docs table. Similarity search
// runs against an in-memory vantage-point index built from the stored
// embeddings on first use and dropped whenever the table changes through
// the store.
type SQLiteStore struct {
	db *sql.DB

	mu    sync.Mutex
	index *vp.Index
	docs  map[string]Document
}

// NewSQLiteStore creates a SQLite-backed Store and ensures the docs schema
// exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// AddDocuments inserts documents into the docs table. Every Document.ID must
// be set. Stored embeddings must share one dimension; a mismatch surfaces as
// an error from SimilaritySearch.
func (s *SQLiteStore) AddDocuments(ctx context.Context, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO docs(id, content, meta, embedding) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("vector: Document.ID must be set")
		}
		emb, err := EncodeEmbedding(d.Embedding)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, d.ID, d.Content, d.Metadata, emb); err != nil {
			return nil, fmt.Errorf("vector: insert %s: %w", d.ID, err)
		}
		ids = append(ids, d.ID)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	s.invalidate()
	return ids, nil
}

// SimilaritySearch returns up to k documents with embeddings, ordered by
// increasing Euclidean distance to queryEmbedding. Documents stored without
// an embedding are never returned.
func (s *SQLiteStore) SimilaritySearch(ctx context.Context, queryEmbedding []float32, k int) ([]Document, error) {
	if k <= 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		if err := s.load(ctx); err != nil {
			return nil, err
		}
	}
	ids, distances, err := s.index.Query(queryEmbedding, k)
	if err != nil {
		return nil, fmt.Errorf("vector: similarity search: %w", err)
	}
	out := make([]Document, len(ids))
	for i, id := range ids {
		out[i] = s.docs[id]
		out[i].Distance = distances[i]
	}
	return out, nil
}

// load reads every embedded document and builds the index. Callers hold mu.
func (s *SQLiteStore) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content, meta, embedding FROM docs WHERE length(embedding) > 0 ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer rows.Close()

	docs := make(map[string]Document)
	var ids []string
	var vecs [][]float32
	for rows.Next() {
		var d Document
		var content, meta sql.NullString
		var blob []byte
		if err := rows.Scan(&d.ID, &content, &meta, &blob); err != nil {
			return err
		}
		d.Content, d.Metadata = content.String, meta.String
		if d.Embedding, err = DecodeEmbedding(blob); err != nil {
			return fmt.Errorf("vector: document %s: %w", d.ID, err)
		}
		docs[d.ID] = d
		ids = append(ids, d.ID)
		vecs = append(vecs, d.Embedding)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	idx := vp.New()
	if err := idx.Build(ids, vecs); err != nil {
		return fmt.Errorf("vector: build index: %w", err)
	}
	s.index, s.docs = idx, docs
	return nil
}

func (s *SQLiteStore) invalidate() {
	s.mu.Lock()
	s.index, s.docs = nil, nil
	s.mu.Unlock()
}

// Remove deletes a document by ID.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("vector: Remove called with empty id")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM docs WHERE id = ?`, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

var _ Store = (*SQLiteStore)(nil)
