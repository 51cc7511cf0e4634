package lib

import (
	"github.com/slok/todo/internal/model"
)

// Task is a single to-do item.
type Task struct {
	ID        int64
	Text      string
	Completed bool
}

// SortCriterion is the ordering applied to a task list.
type SortCriterion string

const (
	// SortAlphabetical orders tasks by text, locale aware.
	SortAlphabetical SortCriterion = SortCriterion(model.SortAlphabetical)
	// SortCompleted places active tasks before completed ones keeping their
	// relative order.
	SortCompleted SortCriterion = SortCriterion(model.SortCompleted)
)

// FilterMode selects the visible tasks.
type FilterMode string

const (
	FilterAll       FilterMode = FilterMode(model.FilterAll)
	FilterActive    FilterMode = FilterMode(model.FilterActive)
	FilterCompleted FilterMode = FilterMode(model.FilterCompleted)
)

// StorageType selects where task lists are stored.
type StorageType string

const (
	StorageFile   StorageType = StorageType(model.StorageBackendFile)
	StorageSQLite StorageType = StorageType(model.StorageBackendSQLite)
	StorageMemory StorageType = StorageType(model.StorageBackendMemory)
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = model.ErrNotFound
	// ErrNotValid is returned when a resource or argument is not valid.
	ErrNotValid = model.ErrNotValid
)

func fromInternalTask(t model.Task) Task {
	return Task{ID: t.ID, Text: t.Text, Completed: t.Completed}
}

func fromInternalTasks(ts []model.Task) []Task {
	out := make([]Task, 0, len(ts))
	for _, t := range ts {
		out = append(out, fromInternalTask(t))
	}
	return out
}
