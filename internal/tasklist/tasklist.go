// Package tasklist holds the task list state: the canonical ordered
// collection of tasks, the active filter and the pending input text.
//
// Every mutation is written through to the injected store before it is
// committed in memory, so the stored and the in-memory collections are
// always equal. Mutations return a copy of the new canonical collection;
// callers re-derive the visible subset with VisibleTasks and refresh
// whatever presentation they own.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// DefaultKey is the store key used when none is configured.
const DefaultKey = "tasks"

// ManagerConfig is the configuration for the task list manager.
type ManagerConfig struct {
	Store  storage.Store
	Key    string
	Logger log.Logger
	// Filter is the initial filter mode.
	Filter model.FilterMode
	// Language is the locale used for alphabetical sorting.
	Language language.Tag
}

func (c *ManagerConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Key == "" {
		c.Key = DefaultKey
	}

	if c.Filter == "" {
		c.Filter = model.FilterAll
	}
	if !c.Filter.Valid() {
		return fmt.Errorf("invalid filter %q", c.Filter)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "tasklist.Manager"})

	return nil
}

// Manager owns the task list state.
type Manager struct {
	store    storage.Store
	key      string
	logger   log.Logger
	collator *collate.Collator

	mu     sync.Mutex
	tasks  []model.Task
	filter model.FilterMode
	input  string
	lastID int64
}

// NewManager returns a new manager with an empty collection, use Load to
// restore the stored one.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Manager{
		store:    cfg.Store,
		key:      cfg.Key,
		logger:   cfg.Logger,
		collator: collate.New(cfg.Language),
		filter:   cfg.Filter,
	}, nil
}

// Load replaces the in-memory collection with the stored one. A missing key
// leaves the collection empty, malformed stored data is ignored and also
// results in an empty collection. Only store failures are returned.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.store.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("could not read stored tasks: %w", err)
		}
		m.logger.Debugf("No stored tasks under %q, starting empty", m.key)
		data = nil
	}

	var tasks []model.Task
	if data != nil {
		tasks, err = decodeTasks(data)
		if err != nil {
			m.logger.Warningf("Ignoring malformed stored tasks under %q: %s", m.key, err)
			tasks = nil
		}
	}

	m.tasks = tasks
	m.lastID = 0
	for _, t := range tasks {
		m.lastID = max(m.lastID, t.ID)
	}

	m.logger.Debugf("Loaded %d tasks", len(tasks))
	return nil
}

// Persist writes the current collection to the store.
func (m *Manager) Persist(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.write(ctx, m.tasks)
}

// AddTask appends a new uncompleted task with the trimmed text and clears the
// pending input. Empty text is ignored.
func (m *Manager) AddTask(ctx context.Context, text string) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addTask(ctx, text)
}

// SubmitInput adds a task using the pending input text.
func (m *Manager) SubmitInput(ctx context.Context) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addTask(ctx, m.input)
}

func (m *Manager) addTask(ctx context.Context, text string) ([]model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		m.logger.Debugf("Ignoring empty task text")
		return slices.Clone(m.tasks), nil
	}

	task := model.Task{ID: m.lastID + 1, Text: text}
	tasks := append(slices.Clone(m.tasks), task)
	if err := m.commit(ctx, tasks); err != nil {
		return slices.Clone(m.tasks), err
	}

	m.lastID = task.ID
	m.input = ""
	m.logger.Debugf("Added task %d", task.ID)

	return slices.Clone(m.tasks), nil
}

// RemoveTask removes the task with the id, missing ids are ignored.
func (m *Manager) RemoveTask(ctx context.Context, id int64) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		m.logger.Debugf("Ignoring removal of missing task %d", id)
		return slices.Clone(m.tasks), nil
	}

	tasks := slices.Delete(slices.Clone(m.tasks), idx, idx+1)
	if err := m.commit(ctx, tasks); err != nil {
		return slices.Clone(m.tasks), err
	}

	m.logger.Debugf("Removed task %d", id)
	return slices.Clone(m.tasks), nil
}

// ToggleCompletion flips the completed flag of the task with the id, missing
// ids are ignored.
func (m *Manager) ToggleCompletion(ctx context.Context, id int64) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		m.logger.Debugf("Ignoring toggle of missing task %d", id)
		return slices.Clone(m.tasks), nil
	}

	tasks := slices.Clone(m.tasks)
	tasks[idx].Completed = !tasks[idx].Completed
	if err := m.commit(ctx, tasks); err != nil {
		return slices.Clone(m.tasks), err
	}

	m.logger.Debugf("Toggled task %d (completed: %t)", id, tasks[idx].Completed)
	return slices.Clone(m.tasks), nil
}

// SortTasks reorders the canonical collection. The sort is stable so equal
// tasks keep their relative order. Unknown criteria are ignored.
func (m *Manager) SortTasks(ctx context.Context, criterion model.SortCriterion) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cmp func(a, b model.Task) int
	switch criterion {
	case model.SortAlphabetical:
		cmp = func(a, b model.Task) int { return m.collator.CompareString(a.Text, b.Text) }
	case model.SortCompleted:
		cmp = func(a, b model.Task) int { return boolToInt(a.Completed) - boolToInt(b.Completed) }
	default:
		m.logger.Debugf("Ignoring unknown sort criterion %q", criterion)
		return slices.Clone(m.tasks), nil
	}

	tasks := slices.Clone(m.tasks)
	slices.SortStableFunc(tasks, cmp)
	if err := m.commit(ctx, tasks); err != nil {
		return slices.Clone(m.tasks), err
	}

	m.logger.Debugf("Sorted tasks by %s", criterion)
	return slices.Clone(m.tasks), nil
}

// SetFilter sets the active filter mode, unknown modes are ignored.
func (m *Manager) SetFilter(mode model.FilterMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !mode.Valid() {
		m.logger.Debugf("Ignoring unknown filter %q", mode)
		return
	}
	m.filter = mode
}

// Filter returns the active filter mode.
func (m *Manager) Filter() model.FilterMode {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.filter
}

// VisibleTasks returns the tasks matching the active filter in canonical order.
func (m *Manager) VisibleTasks() []model.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	visible := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if m.filter.Match(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// Tasks returns the canonical collection.
func (m *Manager) Tasks() []model.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.tasks)
}

// Counts returns the number of total, active and completed tasks.
func (m *Manager) Counts() model.TaskCounts {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := model.TaskCounts{Total: len(m.tasks)}
	for _, t := range m.tasks {
		if t.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
	}
	return counts
}

// SetInput sets the pending input text.
func (m *Manager) SetInput(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.input = text
}

// Input returns the pending input text.
func (m *Manager) Input() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.input
}

// commit persists tasks and only then replaces the in-memory collection.
func (m *Manager) commit(ctx context.Context, tasks []model.Task) error {
	if err := m.write(ctx, tasks); err != nil {
		return err
	}
	m.tasks = tasks
	return nil
}

func (m *Manager) write(ctx context.Context, tasks []model.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}

	if err := m.store.Set(ctx, m.key, data); err != nil {
		return fmt.Errorf("could not persist tasks: %w", err)
	}

	return nil
}

func (m *Manager) indexOf(id int64) int {
	return slices.IndexFunc(m.tasks, func(t model.Task) bool { return t.ID == id })
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Open returns a new manager with the stored collection already loaded.
func Open(ctx context.Context, cfg ManagerConfig) (*Manager, error) {
	m, err := NewManager(cfg)
	if err != nil {
		return nil, err
	}

	if err := m.Load(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
