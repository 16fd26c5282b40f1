// Package engine opens SQLite databases through the pure-Go modernc.org/sqlite
// driver and registers the vector SQL functions (vec_l2, vec_cosine) used to
// cross-check index results from SQL.
package engine
