package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/app/add"
	"github.com/slok/todo/internal/printer"
)

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	text []string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Add a new task.")
	c.Cmd.Arg("text", "Task text, multiple words are joined with spaces.").Required().StringsVar(&c.text)

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
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

	svc, err := add.NewService(add.ServiceConfig{
		Store:  store,
		Key:    settings.Key,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, add.Request{
		Text: strings.Join(c.text, " "),
	})
	if err != nil {
		return fmt.Errorf("could not add task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	msg := "Nothing to add, task text is empty"
	if task != nil {
		msg = fmt.Sprintf("Added task %d: %s", task.ID, task.Text)
	}
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
