// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: store.go — SQLite Solution Store
//
// Purpose:
//   - Persists every found proof so repeated runs over a header stream
//     leave a queryable record. Intermediate solver state is never stored;
//     only finished solutions cross this boundary.
//
// Schema:
//   solutions(id, header, proof_size, nonces JSON, found_at)
// ─────────────────────────────────────────────────────────────────────────────

package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"

	"github.com/programmerTim/cuckoo/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS solutions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	header     TEXT    NOT NULL,
	proof_size INTEGER NOT NULL,
	nonces     TEXT    NOT NULL,
	found_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS solutions_header ON solutions(header);`

// Store wraps the solution database handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the solution database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save records one solution for header. The nonce list is stored as a
// JSON array in ascending nonce order, exactly as emitted by the finder.
func (s *Store) Save(header string, sol types.Solution) error {
	nonces, err := sonnet.Marshal(sol)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		"INSERT INTO solutions (header, proof_size, nonces, found_at) VALUES (?, ?, ?, ?)",
		header, len(sol), string(nonces), time.Now().Unix(),
	)
	return err
}

// Count returns the number of solutions recorded for header.
func (s *Store) Count(header string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM solutions WHERE header = ?", header,
	).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
