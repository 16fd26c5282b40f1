// Package vector defines a lightweight document store API and its SQLite
// implementation. It includes:
//   - Document model and Store interface
//   - SQLiteStore: durable storage with exact L2 similarity search
//   - Schema helpers to create a docs table
//   - Embedding encoding (BLOB)
package vector
