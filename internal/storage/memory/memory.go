package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
)

// StoreConfig is the configuration for the memory store.
type StoreConfig struct {
	Logger log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Store is an in-memory implementation of storage.Store.
type Store struct {
	values map[string][]byte
	mu     sync.RWMutex
	logger log.Logger
}

// NewStore creates a new memory store.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Store{
		values: make(map[string][]byte),
		logger: cfg.Logger,
	}, nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, model.ErrNotFound)
	}

	// Return a copy
	return append([]byte(nil), v...), nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	s.logger.Debugf("Stored key in memory: %s (%d bytes)", key, len(value))

	return nil
}
