package remove

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/tasklist"
)

// ServiceConfig is the configuration for the remove service.
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

// Service removes tasks.
type Service struct {
	store  storage.Store
	key    string
	logger log.Logger
}

// NewService creates a new remove service.
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

// Request represents the remove request parameters.
type Request struct {
	ID int64
}

// Run removes a task by ID. It returns the removed task, or nil when no task
// has the ID.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	s.logger.Debugf("removing task: %d", req.ID)

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  s.store,
		Key:    s.key,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open task list: %w", err)
	}

	task, ok := findTask(tl.Tasks(), req.ID)
	if !ok {
		s.logger.Debugf("task %d not found, nothing removed", req.ID)
		return nil, nil
	}

	if _, err := tl.RemoveTask(ctx, req.ID); err != nil {
		return nil, fmt.Errorf("could not remove task: %w", err)
	}

	s.logger.Infof("removed task: %d", task.ID)
	return &task, nil
}

func findTask(tasks []model.Task, id int64) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
