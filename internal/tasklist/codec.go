package tasklist

import (
	"encoding/json"
	"fmt"

	"github.com/slok/todo/internal/model"
)

// taskRecord is the stored representation of a task.
type taskRecord struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = taskRecord{ID: t.ID, Text: t.Text, Completed: t.Completed}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("could not marshal tasks: %w", err)
	}

	return data, nil
}

func decodeTasks(data []byte) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not unmarshal tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		t := model.Task{ID: r.ID, Text: r.Text, Completed: r.Completed}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("duplicated task id %d: %w", t.ID, model.ErrNotValid)
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
