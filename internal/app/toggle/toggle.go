package toggle

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/tasklist"
)

// ServiceConfig is the configuration for the toggle service.
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

// Service toggles the completion of tasks.
type Service struct {
	store  storage.Store
	key    string
	logger log.Logger
}

// NewService creates a new toggle service.
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

// Request represents the toggle request parameters.
type Request struct {
	ID int64
}

// Run flips the completed flag of a task. It returns the updated task, or nil
// when no task has the ID.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	s.logger.Debugf("toggling task: %d", req.ID)

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  s.store,
		Key:    s.key,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open task list: %w", err)
	}

	tasks, err := tl.ToggleCompletion(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("could not toggle task: %w", err)
	}

	for _, t := range tasks {
		if t.ID == req.ID {
			s.logger.Infof("toggled task: %d (completed: %t)", t.ID, t.Completed)
			return &t, nil
		}
	}

	s.logger.Debugf("task %d not found, nothing toggled", req.ID)
	return nil, nil
}
