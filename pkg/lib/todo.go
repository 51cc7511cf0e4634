package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/storage/file"
	"github.com/slok/todo/internal/storage/memory"
	"github.com/slok/todo/internal/storage/sqlite"
	"github.com/slok/todo/internal/tasklist"
)

const (
	defaultDataDir = ".todo"
	defaultDBFile  = "todo.db"
)

// Config configures the SDK client.
//
// All fields are optional. An empty Config{} uses the "tasks" list stored as
// JSON files in ~/.todo, the same as the CLI defaults.
type Config struct {
	// DataDir is the directory where the lists are stored.
	// Default: ~/.todo.
	DataDir string

	// Storage is the storage backend.
	// Default: [StorageFile].
	Storage StorageType

	// List is the name of the task list, different names are independent lists.
	// Default: "tasks".
	List string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DataDir = filepath.Join(home, defaultDataDir)
	}

	if c.Storage == "" {
		c.Storage = StorageFile
	}
	if !model.StorageBackend(c.Storage).Valid() {
		return fmt.Errorf("unsupported storage: %s: %w", c.Storage, ErrNotValid)
	}

	if c.List == "" {
		c.List = tasklist.DefaultKey
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client manages a single task list.
//
// The list is loaded once by [New], later changes made by other processes
// are not seen until [Client.Reload].
type Client struct {
	tl      *tasklist.Manager
	closeFn func() error
}

// New creates a new SDK client and loads the stored list.
//
// The caller must call [Client.Close] when done to release the storage.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store, closeFn, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  store,
		Key:    cfg.List,
		Logger: cfg.Logger,
	})
	if err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("could not open task list: %w", err)
	}

	return &Client{tl: tl, closeFn: closeFn}, nil
}

func newStore(ctx context.Context, cfg Config) (storage.Store, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Storage {
	case StorageSQLite:
		store, err := sqlite.NewStore(ctx, sqlite.StoreConfig{
			DBPath: filepath.Join(cfg.DataDir, defaultDBFile),
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create sqlite store: %w", err)
		}
		return store, store.Close, nil
	case StorageMemory:
		store, err := memory.NewStore(memory.StoreConfig{Logger: cfg.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create memory store: %w", err)
		}
		return store, noClose, nil
	default:
		store, err := file.NewStore(file.StoreConfig{Dir: cfg.DataDir, Logger: cfg.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create file store: %w", err)
		}
		return store, noClose, nil
	}
}

// Close releases resources held by the client.
// After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

// Reload discards the in-memory list and loads the stored one again.
func (c *Client) Reload(ctx context.Context) error {
	return c.tl.Load(ctx)
}

// Tasks returns all the tasks in the list order.
func (c *Client) Tasks() []Task {
	return fromInternalTasks(c.tl.Tasks())
}

// VisibleTasks returns the tasks matching the filter set with [Client.SetFilter].
func (c *Client) VisibleTasks() []Task {
	return fromInternalTasks(c.tl.VisibleTasks())
}

// SetFilter sets the filter used by [Client.VisibleTasks], unknown modes are ignored.
func (c *Client) SetFilter(mode FilterMode) {
	c.tl.SetFilter(model.FilterMode(mode))
}

// AddTask appends a task to the list. It returns nil if the text is empty
// after trimming, in that case nothing is added.
func (c *Client) AddTask(ctx context.Context, text string) (*Task, error) {
	before := len(c.tl.Tasks())
	tasks, err := c.tl.AddTask(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(tasks) == before {
		return nil, nil
	}

	t := fromInternalTask(tasks[len(tasks)-1])
	return &t, nil
}

// RemoveTask removes a task, unknown IDs are ignored.
func (c *Client) RemoveTask(ctx context.Context, id int64) ([]Task, error) {
	tasks, err := c.tl.RemoveTask(ctx, id)
	return fromInternalTasks(tasks), err
}

// ToggleTask flips the completed state of a task, unknown IDs are ignored.
func (c *Client) ToggleTask(ctx context.Context, id int64) ([]Task, error) {
	tasks, err := c.tl.ToggleCompletion(ctx, id)
	return fromInternalTasks(tasks), err
}

// SortTasks reorders the list, the new order is stored.
// Unknown criteria are ignored.
func (c *Client) SortTasks(ctx context.Context, criterion SortCriterion) ([]Task, error) {
	tasks, err := c.tl.SortTasks(ctx, model.SortCriterion(criterion))
	return fromInternalTasks(tasks), err
}
