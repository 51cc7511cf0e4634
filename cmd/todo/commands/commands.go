package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	storageio "github.com/slok/todo/internal/storage/io"
	"github.com/slok/todo/internal/tasklist"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	// defaultDataDir is the default data directory name (relative to home).
	defaultDataDir = ".todo"
	// settingsFile is the settings file name inside the data directory.
	settingsFile = "config.yaml"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug        bool
	NoLog        bool
	NoColor      bool
	LoggerType   string
	SettingsPath string
	DataDir      string
	Storage      string
	Key          string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	// Settings that can also come from the settings file, empty means "not set".
	app.Flag("config", "Path to the YAML settings file (defaults to <data-dir>/config.yaml when present).").StringVar(&c.SettingsPath)
	app.Flag("data-dir", "Directory where tasks are stored.").StringVar(&c.DataDir)
	app.Flag("storage", "Storage backend.").EnumVar(&c.Storage, string(model.StorageBackendFile), string(model.StorageBackendSQLite), string(model.StorageBackendMemory))
	app.Flag("key", "Storage key of the task list, allows having multiple lists.").StringVar(&c.Key)

	return c
}

// Settings returns the effective settings: defaults, overridden by the
// settings file, overridden by the flags.
func (r RootCommand) Settings(ctx context.Context) (model.Settings, error) {
	settings := model.Settings{
		Storage: model.StorageBackendFile,
		DataDir: filepath.Join(homedir.HomeDir(), defaultDataDir),
		Key:     tasklist.DefaultKey,
		Filter:  model.FilterAll,
	}

	dataDir := settings.DataDir
	if r.DataDir != "" {
		dataDir = r.DataDir
	}

	settingsPath := r.SettingsPath
	required := settingsPath != ""
	if !required {
		settingsPath = filepath.Join(dataDir, settingsFile)
	}

	fileSettings, err := loadSettings(ctx, settingsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		r.Logger.Debugf("No settings file at %s, using defaults", settingsPath)
	case err != nil:
		return model.Settings{}, fmt.Errorf("could not load settings: %w", err)
	default:
		settings = mergeSettings(settings, fileSettings)
	}

	return mergeSettings(settings, model.Settings{
		Storage: model.StorageBackend(r.Storage),
		DataDir: r.DataDir,
		Key:     r.Key,
	}), nil
}

func loadSettings(ctx context.Context, path string) (model.Settings, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Settings{}, fmt.Errorf("could not resolve settings path: %w", err)
	}

	repo := storageio.NewSettingsYAMLRepository(os.DirFS(filepath.Dir(abs)))
	return repo.GetSettings(ctx, filepath.Base(abs))
}

func mergeSettings(base, override model.Settings) model.Settings {
	if override.Storage != "" {
		base.Storage = override.Storage
	}
	if override.DataDir != "" {
		base.DataDir = override.DataDir
	}
	if override.Key != "" {
		base.Key = override.Key
	}
	if override.Filter != "" {
		base.Filter = override.Filter
	}
	return base
}
