package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/printer"
)

func tasksFixture() ([]model.Task, model.TaskCounts) {
	return []model.Task{
		{ID: 1, Text: "Buy milk"},
		{ID: 12, Text: "Write report", Completed: true},
	}, model.TaskCounts{Total: 2, Active: 1, Completed: 1}
}

func TestTablePrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	tasks, counts := tasksFixture()
	err := p.PrintList(tasks, counts)
	require.NoError(t, err)

	exp := `ID  DONE  TASK
1   [ ]   Buy milk
12  [x]   Write report
2 tasks (1 active, 1 completed)
`
	assert.Equal(t, exp, buf.String())
}

func TestTablePrinterPrintEmptyList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintList(nil, model.TaskCounts{})
	require.NoError(t, err)
	assert.Equal(t, "0 tasks (0 active, 0 completed)\n", buf.String())
}

func TestTablePrinterPrintTask(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintTask(model.Task{ID: 3, Text: "Call mom", Completed: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ID:         3")
	assert.Contains(t, out, "Task:       Call mom")
	assert.Contains(t, out, "Completed:  true")
}

func TestJSONPrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	tasks, counts := tasksFixture()
	err := p.PrintList(tasks, counts)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":1,"text":"Buy milk","completed":false},{"id":12,"text":"Write report","completed":true}]`, buf.String())
}

func TestJSONPrinterPrintEmptyList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintList(nil, model.TaskCounts{})
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestPrintMessage(t *testing.T) {
	var table, js bytes.Buffer

	require.NoError(t, printer.NewTablePrinter(&table).PrintMessage("ok"))
	require.NoError(t, printer.NewJSONPrinter(&js).PrintMessage("ok"))

	assert.Equal(t, "ok", strings.TrimSpace(table.String()))
	assert.JSONEq(t, `{"message":"ok"}`, js.String())
}
