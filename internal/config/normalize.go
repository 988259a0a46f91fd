package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeMkvmerge(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeUI()
	return c.normalizeLogging()
}

func (c *Config) normalizeMkvmerge() error {
	binary := strings.TrimSpace(c.Mkvmerge.Binary)
	if binary == "" {
		c.Mkvmerge.Binary = defaultMkvmergeBinary
		return nil
	}
	// bare names are resolved through PATH; anything path-like is expanded
	if strings.ContainsRune(binary, filepath.Separator) || strings.HasPrefix(binary, "~") {
		expanded, err := expandPath(binary)
		if err != nil {
			return fmt.Errorf("mkvmerge.binary: %w", err)
		}
		binary = expanded
	}
	c.Mkvmerge.Binary = binary
	return nil
}

func (c *Config) normalizeOutput() {
	// the suffix is used verbatim, including leading underscores or dots
	if c.Output.Suffix == "" {
		c.Output.Suffix = defaultOutputSuffix
	}
}

func (c *Config) normalizeUI() {
	c.UI.Language = strings.TrimSpace(c.UI.Language)
	if c.UI.Language == "" {
		c.UI.Language = defaultLanguage
	}
	c.UI.Color = strings.ToLower(strings.TrimSpace(c.UI.Color))
	if c.UI.Color == "" {
		c.UI.Color = defaultColor
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
