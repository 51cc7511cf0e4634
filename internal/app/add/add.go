package add

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/tasklist"
)

// ServiceConfig is the configuration for the add service.
type ServiceConfig struct {
	Store  storage.Store
	Key    string
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service adds tasks.
type Service struct {
	store  storage.Store
	key    string
	logger log.Logger
}

// NewService creates a new add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		key:    cfg.Key,
		logger: cfg.Logger,
	}, nil
}

// Request represents the add request parameters.
type Request struct {
	// Text is the task text, surrounding whitespace is trimmed.
	Text string
}

// Run adds a task at the end of the list. It returns nil when the text is
// empty and nothing was added.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	s.logger.Debugf("adding task: %q", req.Text)

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  s.store,
		Key:    s.key,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open task list: %w", err)
	}

	before := len(tl.Tasks())
	tasks, err := tl.AddTask(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("could not add task: %w", err)
	}

	if len(tasks) == before {
		s.logger.Debugf("empty task text, nothing added")
		return nil, nil
	}

	task := tasks[len(tasks)-1]
	s.logger.Infof("added task: %d", task.ID)
	return &task, nil
}
