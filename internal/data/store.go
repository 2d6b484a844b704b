package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// schemaVersion is stamped into PRAGMA user_version. Bumping it forces a
// rebuild of the pokemon and regions tables on next open; pokemon_regions
// and user_pokemon survive so user progress is preserved across upgrades.
const schemaVersion = 10

var (
	// ErrNotCaught is returned when a games update targets a Pokemon the
	// user has no state row for yet.
	ErrNotCaught = errors.New("pokemon not found in user collection")

	// ErrInvalidBundle is returned when an import bundle is missing one of
	// its required collections.
	ErrInvalidBundle = errors.New("invalid export data format")
)

// Store owns the local database.
type Store struct {
	db  *sql.DB
	log *zap.Logger

	// migrations counts upgrade passes run by this handle; tests use it to
	// verify that coalesced opens migrate exactly once.
	migrations int
}

// Open opens or creates the database at path and upgrades the schema if
// the on-disk version is older than schemaVersion.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrations reports how many schema upgrade passes this handle ran.
func (s *Store) Migrations() int {
	return s.migrations
}

func (s *Store) init() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version < schemaVersion {
		if err := s.migrate(version); err != nil {
			return err
		}
		s.migrations++
	}

	return nil
}

// migrate rebuilds the reference tables and creates the user tables if
// absent. Dropping pokemon and regions is deliberate: every version bump
// forces a fresh seed from the external source. Join and user rows keep
// their pokemon ids, which stay valid because seeding assigns ids from the
// stable national number order.
func (s *Store) migrate(from int) error {
	s.log.Info("upgrading database schema",
		zap.Int("from", from),
		zap.Int("to", schemaVersion))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DROP TABLE IF EXISTS pokemon`,
		`DROP TABLE IF EXISTS regions`,
		`CREATE TABLE pokemon (
			id INTEGER PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			name TEXT NOT NULL,
			type1 TEXT NOT NULL,
			type2 TEXT,
			image_url TEXT,
			description TEXT,
			generation INTEGER,
			habitat TEXT,
			hp INTEGER,
			attack INTEGER,
			defense INTEGER,
			special_attack INTEGER,
			special_defense INTEGER,
			speed INTEGER
		)`,
		`CREATE INDEX idx_pokemon_name ON pokemon(name)`,
		`CREATE INDEX idx_pokemon_generation ON pokemon(generation)`,
		`CREATE TABLE regions (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE,
			boundary TEXT NOT NULL,
			color TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pokemon_regions (
			pokemon_id INTEGER NOT NULL,
			region_id INTEGER NOT NULL,
			PRIMARY KEY (pokemon_id, region_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pokemon_regions_pokemon ON pokemon_regions(pokemon_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pokemon_regions_region ON pokemon_regions(region_id)`,
		`CREATE TABLE IF NOT EXISTS user_pokemon (
			pokemon_id INTEGER PRIMARY KEY,
			caught INTEGER NOT NULL DEFAULT 0,
			caught_date TEXT,
			notes TEXT,
			games TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to stamp schema version: %w", err)
	}

	return tx.Commit()
}

// openCall tracks one in-flight physical open shared by concurrent callers.
type openCall struct {
	done  chan struct{}
	store *Store
	err   error
}

// Manager coalesces concurrent opens of the same database: all callers
// that arrive before the first open completes share its outcome, and a
// failed open clears the slot so the next call retries cleanly.
type Manager struct {
	path string
	log  *zap.Logger

	mu    sync.Mutex
	store *Store
	call  *openCall
}

// NewManager creates a manager for the database at path. The database is
// not touched until the first Ensure call.
func NewManager(path string, log *zap.Logger) *Manager {
	return &Manager{path: path, log: log}
}

// Ensure returns the open store, opening it on first use. Concurrent
// callers share a single underlying open and a single migration pass.
func (m *Manager) Ensure(ctx context.Context) (*Store, error) {
	m.mu.Lock()
	if m.store != nil {
		store := m.store
		m.mu.Unlock()
		return store, nil
	}

	if m.call != nil {
		call := m.call
		m.mu.Unlock()
		select {
		case <-call.done:
			return call.store, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &openCall{done: make(chan struct{})}
	m.call = call
	m.mu.Unlock()

	call.store, call.err = Open(m.path, m.log)

	m.mu.Lock()
	if call.err == nil {
		m.store = call.store
	}
	m.call = nil
	m.mu.Unlock()

	close(call.done)
	return call.store, call.err
}

// Close closes the store if it was opened.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store == nil {
		return nil
	}
	err := m.store.Close()
	m.store = nil
	return err
}
