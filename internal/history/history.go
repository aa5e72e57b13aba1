// Package history persists REPL input lines to a small sqlite-backed store,
// using modernc.org/sqlite, the same pure-Go driver a sql builtin
// module would use,
// exercised here for the REPL's ".pink-repl-history" file instead of a
// flat text log.
package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// Store is a handle to the history database. Callers must Close it.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		line TEXT NOT NULL,
		ts INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Append records one REPL input line with its Unix timestamp.
func (s *Store) Append(line string, unixTS int64) error {
	_, err := s.db.Exec(`INSERT INTO history (line, ts) VALUES (?, ?)`, line, unixTS)
	return err
}

// Recent returns up to limit of the most recently recorded lines, oldest
// first - the shape readline's history seeding wants.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.Query(`SELECT line FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// reverse to oldest-first
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}
