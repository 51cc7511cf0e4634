package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/todo/internal/model"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskItem represents a task in the output, same shape as the stored one.
type taskItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintList prints tasks in JSON format, counts are not part of the output
// so it can be piped to other tools.
func (j *JSONPrinter) PrintList(tasks []model.Task, _ model.TaskCounts) error {
	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskItem(t)
	}

	return j.encode(items)
}

// PrintTask prints a single task in JSON format.
func (j *JSONPrinter) PrintTask(task model.Task) error {
	return j.encode(newTaskItem(task))
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTaskItem(t model.Task) taskItem {
	return taskItem{ID: t.ID, Text: t.Text, Completed: t.Completed}
}
