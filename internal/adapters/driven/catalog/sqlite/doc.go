// Package sqlite provides a SQLite implementation of the catalog store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. It backs the
// `dimens catalog import` and `dimens catalog export` commands, keeping
// a local catalog database alongside the TOML file.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory. Declaration order is preserved through the
// pos column.
//
// # Data Location
//
// By default, the database is stored at ~/.dimens/catalog.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
