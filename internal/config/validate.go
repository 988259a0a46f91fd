package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mkvedit/internal/i18n"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if strings.ContainsAny(c.Output.Suffix, `/\`) || strings.ContainsRune(c.Output.Suffix, filepath.Separator) {
		return fmt.Errorf("output.suffix %q must not contain path separators", c.Output.Suffix)
	}
	return nil
}

func (c *Config) validateUI() error {
	if !i18n.Supported(c.UI.Language) {
		return fmt.Errorf("ui.language: unsupported value %q (use en or zh)", c.UI.Language)
	}
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("ui.color: unsupported value %q (use auto, always or never)", c.UI.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
