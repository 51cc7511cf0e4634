package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/app/toggle"
	"github.com/slok/todo/internal/printer"
)

type ToggleCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     int64
	format string
}

// NewToggleCommand returns the toggle command.
func NewToggleCommand(rootCmd *RootCommand, app *kingpin.Application) *ToggleCommand {
	c := &ToggleCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("toggle", "Mark a task as completed, or as active if it was completed.")
	c.Cmd.Arg("id", "Task ID.").Required().Int64Var(&c.id)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ToggleCommand) Name() string { return c.Cmd.FullCommand() }

func (c ToggleCommand) Run(ctx context.Context) error {
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

	svc, err := toggle.NewService(toggle.ServiceConfig{
		Store:  store,
		Key:    settings.Key,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, toggle.Request{ID: c.id})
	if err != nil {
		return fmt.Errorf("could not toggle task: %w", err)
	}

	p := newPrinter(c.format, c.rootCmd)
	if task == nil {
		return p.PrintMessage(fmt.Sprintf("Task %d not found, nothing toggled", c.id))
	}
	if err := p.PrintTask(*task); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}
