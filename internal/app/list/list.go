package list

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/tasklist"
)

// ServiceConfig is the configuration for the list service.
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

// Service lists the visible tasks.
type Service struct {
	store  storage.Store
	key    string
	logger log.Logger
}

// NewService creates a new list service.
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

// Request represents the list request parameters.
type Request struct {
	// Filter selects the visible tasks, defaults to all.
	Filter model.FilterMode
}

// Response is the list result.
type Response struct {
	Tasks  []model.Task
	Counts model.TaskCounts
}

// Run lists the tasks matching the filter in canonical order.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if req.Filter == "" {
		req.Filter = model.FilterAll
	}
	if !req.Filter.Valid() {
		return nil, fmt.Errorf("unknown filter %q: %w", req.Filter, model.ErrNotValid)
	}

	s.logger.Debugf("listing tasks with filter: %s", req.Filter)

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  s.store,
		Key:    s.key,
		Logger: s.logger,
		Filter: req.Filter,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open task list: %w", err)
	}

	tasks := tl.VisibleTasks()
	s.logger.Debugf("found %d tasks", len(tasks))

	return &Response{
		Tasks:  tasks,
		Counts: tl.Counts(),
	}, nil
}
