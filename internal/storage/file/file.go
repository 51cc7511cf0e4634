package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/moby/sys/atomicwriter"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
)

var keyRegexp = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// StoreConfig is the configuration for the file store.
type StoreConfig struct {
	// Dir is the directory where one file per key is stored.
	Dir    string
	Logger log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File"})
	return nil
}

// Store is a filesystem implementation of storage.Store, every key is
// stored as `<dir>/<key>.json` and replaced atomically on writes.
type Store struct {
	dir    string
	logger log.Logger
}

// NewStore creates a new file store, creating the directory if missing.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	cfg.Logger.Debugf("File store initialized at %s", cfg.Dir)

	return &Store{dir: cfg.Dir, logger: cfg.Logger}, nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return data, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := atomicwriter.WriteFile(path, value, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	s.logger.Debugf("Stored key on disk: %s (%d bytes)", path, len(value))
	return nil
}

func (s *Store) path(key string) (string, error) {
	if !keyRegexp.MatchString(key) {
		return "", fmt.Errorf("invalid key %q, must match %s: %w", key, keyRegexp, model.ErrNotValid)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
