// Package sqlite provides a SQLite-backed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_updated_at ON sessions (updated_at);
CREATE TABLE IF NOT EXISTS dictionary_words (
	position INTEGER PRIMARY KEY,
	word     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS dictionary_meta (
	id     INTEGER PRIMARY KEY CHECK (id = 1),
	loaded INTEGER NOT NULL
);
`

// Storage persists sessions and the dictionary in SQLite
type Storage struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Option configures a Storage
type Option func(*Storage)

// WithSessionTTL expires sessions not written for ttl. Expired rows read as
// missing and are pruned on the next save. Zero keeps sessions forever.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Storage) { s.ttl = ttl }
}

// Open opens a SQLite database at path and creates the schema if needed
func Open(path string, opts ...Option) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY churn
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	store := &Storage{db: db, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// cutoff is the oldest updated_at still live, or 0 when sessions never expire
func (s *Storage) cutoff() int64 {
	if s.ttl <= 0 {
		return 0
	}
	return s.now().Add(-s.ttl).UnixMilli()
}

// Close closes the database handle
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// updated_at is the write time, so the TTL runs from the last save
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(session.ID), string(data), s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if cutoff := s.cutoff(); cutoff > 0 {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, cutoff); err != nil {
			return fmt.Errorf("prune sessions: %w", err)
		}
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE id = ? AND updated_at >= ?`,
		string(id), s.cutoff(),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, string(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	var loaded int
	err := s.db.QueryRowContext(ctx, `SELECT loaded FROM dictionary_meta WHERE id = 1`).Scan(&loaded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrDictionaryNotLoaded
		}
		return nil, fmt.Errorf("get dictionary meta: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM dictionary_words ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("get dictionary words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	words := make([]string, 0, loaded)
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin dictionary tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM dictionary_words`); err != nil {
		return fmt.Errorf("clear dictionary: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dictionary_words (position, word) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare dictionary insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, w := range words {
		if _, err = stmt.ExecContext(ctx, i, w); err != nil {
			return fmt.Errorf("insert dictionary word: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO dictionary_meta (id, loaded) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET loaded = excluded.loaded`,
		len(words),
	); err != nil {
		return fmt.Errorf("save dictionary meta: %w", err)
	}

	return tx.Commit()
}
