package tasksort

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/tasklist"
)

// ServiceConfig is the configuration for the tasksort service.
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

// Service reorders the task list.
type Service struct {
	store  storage.Store
	key    string
	logger log.Logger
}

// NewService creates a new tasksort service.
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

// Request represents the sort request parameters.
type Request struct {
	Criterion model.SortCriterion
}

// Run sorts the stored task list and returns it in its new order.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	if !req.Criterion.Valid() {
		return nil, fmt.Errorf("unknown sort criterion %q: %w", req.Criterion, model.ErrNotValid)
	}

	s.logger.Debugf("sorting tasks by: %s", req.Criterion)

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  s.store,
		Key:    s.key,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open task list: %w", err)
	}

	tasks, err := tl.SortTasks(ctx, req.Criterion)
	if err != nil {
		return nil, fmt.Errorf("could not sort tasks: %w", err)
	}

	s.logger.Infof("sorted %d tasks by %s", len(tasks), req.Criterion)
	return tasks, nil
}
