package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/app/tasksort"
	"github.com/slok/todo/internal/model"
)

type SortCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	criterion string
	format    string
}

// NewSortCommand returns the sort command.
func NewSortCommand(rootCmd *RootCommand, app *kingpin.Application) *SortCommand {
	c := &SortCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("sort", "Sort the task list, the new order is stored.")
	c.Cmd.Arg("criterion", "Sort criterion.").Required().EnumVar(&c.criterion, string(model.SortAlphabetical), string(model.SortCompleted))
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c SortCommand) Name() string { return c.Cmd.FullCommand() }

func (c SortCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	settings, err := c.rootCmd.Settings(ctx)
	if err != nil {
		return err
	}

	store, closeStore, err := newStore(ctx, settings, logger)
	if err != nil {
		return fmt.Errorf("could not create store: %w", err)
	}
	defer closeStore()

	svc, err := tasksort.NewService(tasksort.ServiceConfig{
		Store:  store,
		Key:    settings.Key,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, tasksort.Request{
		Criterion: model.SortCriterion(c.criterion),
	})
	if err != nil {
		return fmt.Errorf("could not sort tasks: %w", err)
	}

	if err := newPrinter(c.format, c.rootCmd).PrintList(tasks, countTasks(tasks)); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
