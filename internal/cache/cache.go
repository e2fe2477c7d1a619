// Package cache provides an optional, content-addressed memoization
// layer over inference results, backed by modernc.org/sqlite (pure
// Go, no cgo). It sits strictly outside a single inference run: the
// CLI populates it after infer.Run returns and never reads entries
// back before a run (nothing in this module calls Get), so enabling,
// disabling or clearing it changes nothing about what a run computes,
// and every run recomputes every scheme.
package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps a sqlite-backed key/value table of serialized inference
// results.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS schemes (
	key TEXT PRIMARY KEY,
	effect_print TEXT NOT NULL,
	effect_vars TEXT NOT NULL,
	entity_vars TEXT NOT NULL
)`

// Open opens (creating if necessary) the sqlite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Entry is the cached, serialized form of an EffectScheme. It is a
// cache-internal wire format only — unrelated to the inference
// engine's own (out-of-scope) I/O.
type Entry struct {
	EffectPrint string
	EffectVars  string
	EntityVars  string
}

// Get returns the cached entry for key, if any.
func (s *Store) Get(key string) (Entry, bool, error) {
	row := s.db.QueryRow(`SELECT effect_print, effect_vars, entity_vars FROM schemes WHERE key = ?`, key)
	var e Entry
	err := row.Scan(&e.EffectPrint, &e.EffectVars, &e.EntityVars)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	return e, true, nil
}

// Put stores e under key, overwriting any existing entry.
func (s *Store) Put(key string, e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO schemes (key, effect_print, effect_vars, entity_vars) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET effect_print = excluded.effect_print, effect_vars = excluded.effect_vars, entity_vars = excluded.entity_vars`,
		key, e.EffectPrint, e.EffectVars, e.EntityVars,
	)
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}
	return nil
}

// Stats reports how many entries the cache currently holds.
func (s *Store) Stats() (int, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM schemes`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("cache: stats: %w", err)
	}
	return n, nil
}

// Clear removes every cached entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM schemes`); err != nil {
		return fmt.Errorf("cache: clear: %w", err)
	}
	return nil
}
