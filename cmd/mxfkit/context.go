package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mxfkit/internal/config"
	"mxfkit/internal/logging"
)

type commandContext struct {
	configFlag   *string
	outputFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, outputFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		outputFlag:   outputFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.ToLower(flagValue(c.logLevelFlag)); level != "" {
			cfg.Logging.Level = level
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// ensureLogger builds the CLI logger from the loaded config.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// outputFormat resolves the listing format: --output wins over output.format.
func (c *commandContext) outputFormat() (string, error) {
	format := strings.ToLower(flagValue(c.outputFlag))
	if format == "" {
		if cfg := c.configValue(); cfg != nil {
			format = cfg.Output.Format
		}
	}
	if format == "" {
		format = "table"
	}
	if !config.ValidOutputFormat(format) {
		return "", fmt.Errorf("unsupported output format %q (want table, json or plain)", format)
	}
	return format, nil
}

func (c *commandContext) tableStyle() string {
	if cfg := c.configValue(); cfg != nil {
		return cfg.Output.Style
	}
	return "rounded"
}

func (c *commandContext) colorize(w io.Writer) bool {
	mode := "auto"
	if cfg := c.configValue(); cfg != nil {
		mode = cfg.Output.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(w)
	}
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
