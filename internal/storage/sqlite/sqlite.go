package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/sqlite/migrations"
)

// StoreConfig is the configuration for the SQLite store.
type StoreConfig struct {
	DBPath string
	Logger log.Logger
	// TimeNow is used to set the update timestamp of the keys.
	TimeNow func() time.Time
}

func (c *StoreConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	if c.TimeNow == nil {
		c.TimeNow = time.Now
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db      *sql.DB
	logger  log.Logger
	timeNow func() time.Time
}

// NewStore creates a new SQLite store and applies the schema migrations.
func NewStore(ctx context.Context, cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	version, err := migrator.Up(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite store initialized at %s (schema v%d)", cfg.DBPath, version)

	return &Store{db: db, logger: cfg.Logger, timeNow: cfg.TimeNow}, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query key: %w", err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is required: %w", model.ErrNotValid)
	}
	if value == nil {
		value = []byte{}
	}

	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, key, value, s.timeNow().UTC().Unix())
	if err != nil {
		return fmt.Errorf("could not upsert key: %w", err)
	}

	s.logger.Debugf("Stored key in database: %s (%d bytes)", key, len(value))
	return nil
}

// UpdatedAt returns the last time key was written.
func (s *Store) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var updatedAt int64
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return time.Time{}, fmt.Errorf("could not query key: %w", err)
	}

	return time.Unix(updatedAt, 0).UTC(), nil
}
