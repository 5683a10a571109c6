package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/veridian-labs/dimens-cli/internal/adapters/driven/catalog/sqlite/migrations"
	"github.com/veridian-labs/dimens-cli/internal/core/domain"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

// Store is a SQLite implementation of driven.CatalogStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a catalog store at the specified database path.
// If dbPath is empty, defaults to ~/.dimens/catalog.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dimens", "catalog.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_catalog.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Load reads the full catalog in declaration order.
func (s *Store) Load(ctx context.Context) (domain.CatalogData, error) {
	var data domain.CatalogData

	rows, err := s.db.QueryContext(ctx,
		"SELECT name, symbol FROM catalog_dimensions ORDER BY pos")
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("querying dimensions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d domain.DimensionDecl
		if err := rows.Scan(&d.Name, &d.Symbol); err != nil {
			return domain.CatalogData{}, fmt.Errorf("scanning dimension: %w", err)
		}
		data.Dimensions = append(data.Dimensions, d)
	}
	if err := rows.Err(); err != nil {
		return domain.CatalogData{}, fmt.Errorf("iterating dimensions: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		"SELECT name, dimension, parent, definition, character FROM catalog_kinds ORDER BY pos")
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("querying kinds: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k domain.KindDecl
		if err := rows.Scan(&k.Name, &k.Dimension, &k.Parent, &k.Definition, &k.Character); err != nil {
			return domain.CatalogData{}, fmt.Errorf("scanning kind: %w", err)
		}
		data.Kinds = append(data.Kinds, k)
	}
	if err := rows.Err(); err != nil {
		return domain.CatalogData{}, fmt.Errorf("iterating kinds: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		"SELECT name, symbol, kind, reference, scale, definition FROM catalog_units ORDER BY pos")
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var u domain.UnitDecl
		if err := rows.Scan(&u.Name, &u.Symbol, &u.Kind, &u.Reference, &u.Scale, &u.Definition); err != nil {
			return domain.CatalogData{}, fmt.Errorf("scanning unit: %w", err)
		}
		data.Units = append(data.Units, u)
	}
	if err := rows.Err(); err != nil {
		return domain.CatalogData{}, fmt.Errorf("iterating units: %w", err)
	}

	return data, nil
}

// Save replaces the full catalog in a single transaction.
func (s *Store) Save(ctx context.Context, data domain.CatalogData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"catalog_dimensions", "catalog_kinds", "catalog_units"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, d := range data.Dimensions {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO catalog_dimensions (pos, name, symbol) VALUES (?, ?, ?)",
			i, d.Name, d.Symbol)
		if err != nil {
			return fmt.Errorf("inserting dimension %q: %w", d.Name, err)
		}
	}
	for i, k := range data.Kinds {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO catalog_kinds (pos, name, dimension, parent, definition, character) VALUES (?, ?, ?, ?, ?, ?)",
			i, k.Name, k.Dimension, k.Parent, k.Definition, k.Character)
		if err != nil {
			return fmt.Errorf("inserting kind %q: %w", k.Name, err)
		}
	}
	for i, u := range data.Units {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO catalog_units (pos, name, symbol, kind, reference, scale, definition) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i, u.Name, u.Symbol, u.Kind, u.Reference, u.Scale, u.Definition)
		if err != nil {
			return fmt.Errorf("inserting unit %q: %w", u.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}
