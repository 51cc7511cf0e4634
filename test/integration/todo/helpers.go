package todo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/slok/todo/test/integration/testutils"
)

// Config is the integration tests configuration.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "todo"
	}

	if _, err := exec.LookPath(c.Binary); err != nil {
		return fmt.Errorf("binary %q not found: %w", c.Binary, err)
	}

	return nil
}

// NewConfig returns the integration configuration from the environment, skips the
// test when integration tests are not enabled.
func NewConfig(t *testing.T) Config {
	const (
		envActivation = "TODO_INTEGRATION"
		envBinary     = "TODO_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// RunTodoCmd runs a todo command against an isolated data directory and storage backend.
func RunTodoCmd(ctx context.Context, config Config, dataDir, storage string, args ...string) (stdout, stderr []byte, err error) {
	fullArgs := append([]string{"--data-dir", dataDir, "--storage", storage}, args...)
	return testutils.RunTodo(ctx, nil, config.Binary, fullArgs, true)
}
