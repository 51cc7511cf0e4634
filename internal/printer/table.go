package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/todo/internal/model"
)

// TablePrinter prints task information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints tasks in a table format followed by a summary line.
func (t *TablePrinter) PrintList(tasks []model.Task, counts model.TaskCounts) error {
	if len(tasks) > 0 {
		tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

		// Print header
		fmt.Fprintln(tw, "ID\tDONE\tTASK")

		// Print rows
		for _, task := range tasks {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, checkbox(task.Completed), task.Text)
		}

		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(t.writer, "%d tasks (%d active, %d completed)\n", counts.Total, counts.Active, counts.Completed)
	return nil
}

// PrintTask prints a single task.
func (t *TablePrinter) PrintTask(task model.Task) error {
	fmt.Fprintf(t.writer, "ID:         %d\n", task.ID)
	fmt.Fprintf(t.writer, "Task:       %s\n", task.Text)
	fmt.Fprintf(t.writer, "Completed:  %t\n", task.Completed)
	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
