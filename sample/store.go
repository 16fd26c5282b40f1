package sample

import (
	"context"
	"database/sql"
	"fmt"
)

const pointsSchema = `
CREATE TABLE IF NOT EXISTS points (
    id INTEGER PRIMARY KEY,
    x  INTEGER NOT NULL,
    y  INTEGER NOT NULL
);
`

// EnsureSchema creates the points table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("sample: db is nil")
	}
	_, err := db.ExecContext(ctx, pointsSchema)
	return err
}

// SavePoints replaces the content of the points table with points in a
// single transaction.
func SavePoints(ctx context.Context, db *sql.DB, points []Point) error {
	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM points`); err != nil {
		return fmt.Errorf("sample: clear points: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points(id, x, y) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.ID, p.X, p.Y); err != nil {
			return fmt.Errorf("sample: insert point %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// LoadPoints reads every stored point ordered by id.
func LoadPoints(ctx context.Context, db *sql.DB) ([]Point, error) {
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, x, y FROM points ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Point
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.ID, &p.X, &p.Y); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
