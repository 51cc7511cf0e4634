// Package migrations holds the embedded schema of the SQLite key-value store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/slok/todo/internal/log"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Migrator applies the kv schema to a SQLite database.
type Migrator struct {
	db     *sql.DB
	logger log.Logger
}

// NewMigrator returns a migrator for db.
func NewMigrator(db *sql.DB, logger log.Logger) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if logger == nil {
		logger = log.Noop
	}

	return &Migrator{
		db:     db,
		logger: logger.WithValues(log.Kv{"svc": "sqlite.Migrator"}),
	}, nil
}

// Up brings the schema to the latest version and returns it. Running it on an
// up to date database is a no-op.
func (m *Migrator) Up(ctx context.Context) (uint, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	mig, closeSrc, err := m.migrate()
	if err != nil {
		return 0, err
	}
	defer closeSrc()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("could not apply schema: %w", err)
	}

	version, dirty, err := mig.Version()
	if err != nil {
		return 0, fmt.Errorf("could not get schema version: %w", err)
	}
	if dirty {
		return 0, fmt.Errorf("schema version %d is dirty", version)
	}

	m.logger.Debugf("Schema at version %d", version)
	return version, nil
}

func (m *Migrator) migrate() (*migrate.Migrate, func(), error) {
	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create sqlite driver: %w", err)
	}

	src, err := iofs.New(schemaFiles, "sql")
	if err != nil {
		return nil, nil, fmt.Errorf("could not read embedded schema: %w", err)
	}
	closeSrc := func() {
		if err := src.Close(); err != nil {
			m.logger.Warningf("could not close schema source: %s", err)
		}
	}

	mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		closeSrc()
		return nil, nil, fmt.Errorf("could not create migrate instance: %w", err)
	}

	return mig, closeSrc, nil
}
