package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"edlparser/internal/config"
	"edlparser/internal/logging"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	runID      string
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := applyLogLevel(cfg, c.logLevelFlag); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func applyLogLevel(cfg *config.Config, flag *string) error {
	if flag == nil {
		return nil
	}
	level := strings.ToLower(strings.TrimSpace(*flag))
	if level == "" {
		return nil
	}
	if level == "warning" {
		level = "warn"
	}
	for _, known := range logLevels {
		if level == known {
			cfg.Logging.Level = level
			return nil
		}
	}
	return fmt.Errorf("--log-level: unsupported value %q (want one of %s)", *flag, strings.Join(logLevels, ", "))
}

// loggerFor returns the invocation logger tagged with component. Every logger
// handed out during one invocation shares the same run ID.
func (c *commandContext) loggerFor(cmd *cobra.Command, component string) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		base, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.runID = uuid.NewString()
		runCtx := logging.WithRunID(cmd.Context(), c.runID)
		c.logger = logging.WithContext(runCtx, base)
	})
	if c.loggerErr != nil {
		return nil, c.loggerErr
	}
	return logging.NewComponentLogger(c.logger, component), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
