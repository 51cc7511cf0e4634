// Package ui provides the interactive terminal view of the task list.
package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/tasklist"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	activeTabStyle = lipgloss.NewStyle().Underline(true).Bold(true)
)

// Config is the configuration for the UI model.
type Config struct {
	TaskList *tasklist.Manager
	Logger   log.Logger
}

func (c *Config) defaults() error {
	if c.TaskList == nil {
		return fmt.Errorf("task list is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "ui.Model"})
	return nil
}

// Model is the bubbletea model of the task list view. Every user action is
// applied to the task list and the visible tasks are re-derived afterwards.
type Model struct {
	ctx    context.Context
	tl     *tasklist.Manager
	logger log.Logger

	visible  []model.Task
	cursor   int
	editing  bool
	lastErr  error
	quitting bool
}

// NewModel returns a new UI model, the task list must be already loaded.
func NewModel(ctx context.Context, cfg Config) (*Model, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m := &Model{
		ctx:    ctx,
		tl:     cfg.TaskList,
		logger: cfg.Logger,
	}
	m.refresh()

	return m, nil
}

// Run runs the interactive program until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	m, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("could not run ui: %w", err)
	}

	return nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.editing {
		m.updateInput(key)
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "i", "n":
		m.editing = true
	case " ", "enter":
		if t, ok := m.selected(); ok {
			_, err := m.tl.ToggleCompletion(m.ctx, t.ID)
			m.apply(err)
		}
	case "d", "x":
		if t, ok := m.selected(); ok {
			_, err := m.tl.RemoveTask(m.ctx, t.ID)
			m.apply(err)
		}
	case "a":
		_, err := m.tl.SortTasks(m.ctx, model.SortAlphabetical)
		m.apply(err)
	case "c":
		_, err := m.tl.SortTasks(m.ctx, model.SortCompleted)
		m.apply(err)
	case "1":
		m.tl.SetFilter(model.FilterAll)
		m.apply(nil)
	case "2":
		m.tl.SetFilter(model.FilterActive)
		m.apply(nil)
	case "3":
		m.tl.SetFilter(model.FilterCompleted)
		m.apply(nil)
	}

	return m, nil
}

func (m *Model) updateInput(key tea.KeyMsg) {
	input := m.tl.Input()

	switch key.Type {
	case tea.KeyEsc:
		m.editing = false
	case tea.KeyEnter:
		_, err := m.tl.SubmitInput(m.ctx)
		m.apply(err)
		if err == nil {
			m.cursor = max(len(m.visible)-1, 0)
		}
	case tea.KeyBackspace:
		if r := []rune(input); len(r) > 0 {
			m.tl.SetInput(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		m.tl.SetInput(input + " ")
	case tea.KeyRunes:
		m.tl.SetInput(input + string(key.Runes))
	}
}

// apply records the result of an action and re-derives the visible tasks.
func (m *Model) apply(err error) {
	m.lastErr = err
	if err != nil {
		m.logger.Errorf("action failed: %s", err)
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.visible = m.tl.VisibleTasks()
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m *Model) selected() (model.Task, bool) {
	if len(m.visible) == 0 {
		return model.Task{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("To-Do List"))
	b.WriteString("\n\n")

	prompt := "  "
	if m.editing {
		prompt = cursorStyle.Render("> ")
	}
	input := m.tl.Input()
	if input == "" && !m.editing {
		input = helpStyle.Render("Add a new task (i)")
	}
	b.WriteString(prompt + input + "\n\n")

	b.WriteString(m.filterTabs() + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  No tasks.") + "\n")
	}
	for i, t := range m.visible {
		cursor := "  "
		if i == m.cursor && !m.editing {
			cursor = cursorStyle.Render("› ")
		}
		text := t.Text
		if t.Completed {
			text = completedStyle.Render(text)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, checkbox(t.Completed), text)
	}

	counts := m.tl.Counts()
	fmt.Fprintf(&b, "\n%d tasks, %d active, %d completed\n", counts.Total, counts.Active, counts.Completed)

	if m.lastErr != nil {
		b.WriteString(errStyle.Render("Error: "+m.lastErr.Error()) + "\n")
	}

	help := "space: toggle • d: remove • i: add • a: sort alphabetically • c: sort by completion • 1/2/3: filter • q: quit"
	if m.editing {
		help = "enter: add task • esc: cancel"
	}
	b.WriteString(helpStyle.Render(help) + "\n")

	return b.String()
}

func (m *Model) filterTabs() string {
	tabs := []struct {
		mode  model.FilterMode
		label string
	}{
		{model.FilterAll, "1 All"},
		{model.FilterActive, "2 Active"},
		{model.FilterCompleted, "3 Completed"},
	}

	current := m.tl.Filter()
	out := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.label
		if t.mode == current {
			label = activeTabStyle.Render(label)
		}
		out = append(out, label)
	}
	return strings.Join(out, "  ")
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
