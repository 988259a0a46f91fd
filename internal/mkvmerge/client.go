package mkvmerge

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"mkvedit/internal/logging"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "mkvmerge"

// CommandRunner executes a command and returns its fully drained output streams.
type CommandRunner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Client runs mkvmerge for identification and remuxing.
type Client struct {
	binary string
	logger *slog.Logger
	run    CommandRunner
}

// New constructs a client for the given binary (DefaultBinary when empty).
func New(binary string, logger *slog.Logger) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		binary: binary,
		logger: logging.NewComponentLogger(logger, "mkvmerge"),
		run:    defaultCommandRunner,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (c *Client) WithCommandRunner(r CommandRunner) {
	if c != nil && r != nil {
		c.run = r
	}
}

// Binary reports the executable the client invokes.
func (c *Client) Binary() string {
	if c == nil {
		return DefaultBinary
	}
	return c.binary
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
