package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/tasklist"
	"github.com/slok/todo/internal/ui"
)

type UICommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewUICommand returns the interactive ui command.
func NewUICommand(rootCmd *RootCommand, app *kingpin.Application) *UICommand {
	c := &UICommand{rootCmd: rootCmd}

	c.Cmd = app.Command("ui", "Open the interactive task list.").Default()

	return c
}

func (c UICommand) Name() string { return c.Cmd.FullCommand() }

func (c UICommand) Run(ctx context.Context) error {
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

	tl, err := tasklist.Open(ctx, tasklist.ManagerConfig{
		Store:  store,
		Key:    settings.Key,
		Logger: logger,
		Filter: settings.Filter,
	})
	if err != nil {
		return fmt.Errorf("could not open task list: %w", err)
	}

	return ui.Run(ctx, ui.Config{
		TaskList: tl,
		Logger:   logger,
	})
}
