package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/slok/todo/internal/model"
)

// SettingsYAMLRepository loads user settings from YAML files.
type SettingsYAMLRepository struct {
	fs fs.FS
}

// NewSettingsYAMLRepository creates a new YAML settings repository.
func NewSettingsYAMLRepository(filesystem fs.FS) *SettingsYAMLRepository {
	return &SettingsYAMLRepository{fs: filesystem}
}

// GetSettings loads the settings from a YAML file and returns a validated domain model.
func (r *SettingsYAMLRepository) GetSettings(ctx context.Context, path string) (model.Settings, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Settings{}, ctx.Err()
	}

	var cfg Settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.Settings{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg.toModel(), nil
}

// Settings represents the YAML structure for the settings file.
type Settings struct {
	Storage string `yaml:"storage"`
	DataDir string `yaml:"data_dir"`
	Key     string `yaml:"key"`
	Filter  string `yaml:"filter"`
}

func (s Settings) validate() error {
	if s.Storage != "" && !model.StorageBackend(s.Storage).Valid() {
		return fmt.Errorf("unknown storage %q (must be: file, sqlite, memory)", s.Storage)
	}

	if s.Filter != "" && !model.FilterMode(s.Filter).Valid() {
		return fmt.Errorf("unknown filter %q (must be: all, active, completed)", s.Filter)
	}

	return nil
}

func (s Settings) toModel() model.Settings {
	return model.Settings{
		Storage: model.StorageBackend(s.Storage),
		DataDir: s.DataDir,
		Key:     s.Key,
		Filter:  model.FilterMode(s.Filter),
	}
}
