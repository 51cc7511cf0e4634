package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/app/list"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/printer"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	filter string
	format string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List tasks.").Alias("ls")
	c.Cmd.Flag("filter", "Show only some tasks (all, active, completed).").EnumVar(&c.filter, string(model.FilterAll), string(model.FilterActive), string(model.FilterCompleted))
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	settings, err := c.rootCmd.Settings(ctx)
	if err != nil {
		return err
	}

	// Flag wins over the settings file.
	filter := settings.Filter
	if c.filter != "" {
		filter = model.FilterMode(c.filter)
	}

	store, closeStore, err := newStore(ctx, settings, logger)
	if err != nil {
		return fmt.Errorf("could not create store: %w", err)
	}
	defer closeStore()

	svc, err := list.NewService(list.ServiceConfig{
		Store:  store,
		Key:    settings.Key,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, list.Request{Filter: filter})
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if err := newPrinter(c.format, c.rootCmd).PrintList(resp.Tasks, resp.Counts); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}

func newPrinter(format string, rootCmd *RootCommand) printer.Printer {
	switch format {
	case "json":
		return printer.NewJSONPrinter(rootCmd.Stdout)
	default: // table
		return printer.NewTablePrinter(rootCmd.Stdout)
	}
}

func countTasks(tasks []model.Task) model.TaskCounts {
	counts := model.TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
	}
	return counts
}
