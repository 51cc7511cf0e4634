package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/storage/file"
	"github.com/slok/todo/internal/storage/memory"
	"github.com/slok/todo/internal/storage/sqlite"
)

const sqliteDBFile = "todo.db"

// newStore creates the task store selected by the settings, the returned
// function releases its resources.
func newStore(ctx context.Context, settings model.Settings, logger log.Logger) (storage.Store, func(), error) {
	switch settings.Storage {
	case model.StorageBackendSQLite:
		store, err := sqlite.NewStore(ctx, sqlite.StoreConfig{
			DBPath: filepath.Join(settings.DataDir, sqliteDBFile),
			Logger: logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create sqlite store: %w", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warningf("could not close sqlite store: %s", err)
			}
		}, nil

	case model.StorageBackendMemory:
		store, err := memory.NewStore(memory.StoreConfig{Logger: logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create memory store: %w", err)
		}
		return store, func() {}, nil

	case model.StorageBackendFile, "":
		store, err := file.NewStore(file.StoreConfig{
			Dir:    settings.DataDir,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create file store: %w", err)
		}
		return store, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage %q: %w", settings.Storage, model.ErrNotValid)
}
