package macrostore

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/SwannedLakee/fsearch/internal/queryflags"
)

// SQLStore is a SQLite-backed Registry, for hosts that want macros to
// survive process restarts. It implements the same Registry interface
// as MemoryRegistry, so the parser never needs to know which backing
// store a given Context was built with.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (and, if necessary, creates) a filter-macro
// database at dsn, a modernc.org/sqlite data source name.
func OpenSQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("macrostore: open %q: %w", dsn, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS filters (
			rowid      INTEGER PRIMARY KEY AUTOINCREMENT,
			id         TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			query_text TEXT NOT NULL,
			flags      INTEGER NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("macrostore: migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Insert persists f, preserving insertion order for FindByName's
// first-match semantics.
func (s *SQLStore) Insert(f Filter) error {
	_, err := s.db.Exec(
		`INSERT INTO filters (id, name, query_text, flags) VALUES (?, ?, ?, ?)`,
		f.ID.String(), f.Name, f.QueryText, uint8(f.Flags),
	)
	return err
}

func (s *SQLStore) FindByName(name string) (Filter, bool) {
	row := s.db.QueryRow(
		`SELECT id, name, query_text, flags FROM filters WHERE name = ? ORDER BY rowid ASC LIMIT 1`,
		name,
	)

	var idText, foundName, queryText string
	var flags uint8
	if err := row.Scan(&idText, &foundName, &queryText, &flags); err != nil {
		return Filter{}, false
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return Filter{}, false
	}
	return Filter{ID: id, Name: foundName, QueryText: queryText, Flags: queryflags.Flags(flags)}, true
}

var _ Registry = (*SQLStore)(nil)
