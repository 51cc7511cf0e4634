package model

import (
	"fmt"
	"strings"
)

// Task is a single to-do item.
type Task struct {
	ID        int64
	Text      string
	Completed bool
}

// Validate validates the task model.
func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive, got %d: %w", t.ID, ErrNotValid)
	}

	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("task %d text is required: %w", t.ID, ErrNotValid)
	}

	return nil
}

// SortCriterion is the ordering applied to the canonical task list.
type SortCriterion string

const (
	// SortAlphabetical orders tasks by text using locale aware comparison.
	SortAlphabetical SortCriterion = "alphabetical"
	// SortCompleted places incomplete tasks before completed ones.
	SortCompleted SortCriterion = "completed"
)

// Valid returns true if the criterion is a known one.
func (s SortCriterion) Valid() bool {
	switch s {
	case SortAlphabetical, SortCompleted:
		return true
	}
	return false
}

// FilterMode selects which subset of tasks is visible.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// Valid returns true if the filter mode is a known one.
func (f FilterMode) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Match returns true if the task is visible under the filter mode.
func (f FilterMode) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// TaskCounts summarizes a task list.
type TaskCounts struct {
	Total     int
	Active    int
	Completed int
}
