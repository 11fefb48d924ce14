package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	logFormats    = []string{"console", "json"}
	logLevels     = []string{"debug", "info", "warn", "error"}
	outputFormats = []string{"table", "json", "plain"}
	outputStyles  = []string{"rounded", "light", "ascii"}
	outputColors  = []string{"auto", "always", "never"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return errors.New("catalog.path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if err := ensureOneOf("logging.format", c.Logging.Format, logFormats); err != nil {
		return err
	}
	return ensureOneOf("logging.level", c.Logging.Level, logLevels)
}

func (c *Config) validateOutput() error {
	if err := ensureOneOf("output.format", c.Output.Format, outputFormats); err != nil {
		return err
	}
	if err := ensureOneOf("output.style", c.Output.Style, outputStyles); err != nil {
		return err
	}
	return ensureOneOf("output.color", c.Output.Color, outputColors)
}

// ValidOutputFormat reports whether format is an accepted output.format value.
func ValidOutputFormat(format string) bool {
	return ensureOneOf("output.format", format, outputFormats) == nil
}

func ensureOneOf(key, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}
