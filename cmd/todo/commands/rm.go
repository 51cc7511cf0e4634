package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/app/remove"
	"github.com/slok/todo/internal/printer"
)

type RemoveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id int64
}

// NewRemoveCommand returns the remove command.
func NewRemoveCommand(rootCmd *RootCommand, app *kingpin.Application) *RemoveCommand {
	c := &RemoveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("rm", "Remove a task.")
	c.Cmd.Arg("id", "Task ID.").Required().Int64Var(&c.id)

	return c
}

func (c RemoveCommand) Name() string { return c.Cmd.FullCommand() }

func (c RemoveCommand) Run(ctx context.Context) error {
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

	svc, err := remove.NewService(remove.ServiceConfig{
		Store:  store,
		Key:    settings.Key,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, remove.Request{ID: c.id})
	if err != nil {
		return fmt.Errorf("could not remove task: %w", err)
	}

	// Print result message.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	msg := fmt.Sprintf("Task %d not found, nothing removed", c.id)
	if task != nil {
		msg = fmt.Sprintf("Removed task %d: %s", task.ID, task.Text)
	}
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
