// Package storage persists players, the house, the agent and finished games in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when nothing has been saved yet.
	ErrNotFound = errors.New("not found")
	// ErrBadCredentials covers both unknown users and wrong passwords.
	ErrBadCredentials = errors.New("bad username or password")
	// ErrPlayerExists is returned when registering a taken username.
	ErrPlayerExists = errors.New("player already exists")
)

// Store is the SQLite-backed save game: players, the shared house, the child and results.
// It uses a single connection, so calls are serialised.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database. A nil store is fine.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS Players (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			current_room TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS Rooms (
			name TEXT PRIMARY KEY,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			is_clean INTEGER NOT NULL DEFAULT 0,
			last_cleaned TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS RoomConnections (
			from_room TEXT NOT NULL REFERENCES Rooms(name) ON DELETE CASCADE,
			direction TEXT NOT NULL,
			to_room TEXT NOT NULL,
			PRIMARY KEY (from_room, direction)
		);`,
		`CREATE TABLE IF NOT EXISTS Agent (
			agent_id INTEGER PRIMARY KEY CHECK (agent_id = 1),
			current_room TEXT NOT NULL,
			target TEXT NOT NULL DEFAULT '',
			path_json TEXT NOT NULL DEFAULT '[]',
			wait_counter INTEGER NOT NULL,
			wait_threshold INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS GameResults (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			session_id TEXT NOT NULL,
			time_taken_ms INTEGER NOT NULL,
			rooms_cleaned INTEGER NOT NULL,
			result TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS game_results_by_result ON GameResults(result, time_taken_ms);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// withTx runs fn in a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
