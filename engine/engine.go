package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens a SQLite database. Pass a file path such as "./points.db" or
// ":memory:" for a private in-memory database.
func Open(dsn string) (*sql.DB, error) { return sql.Open(DriverName, dsn) }
