package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kino/internal/batch"
	"kino/internal/config"
	"kino/internal/game"
	"kino/internal/logging"
	"kino/internal/resolver"
	"kino/internal/tmdb"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string
	runID         string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configFile bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		runID:         uuid.NewString(),
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
		if err := c.applyLogFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configFile = exists
	})
	return c.config, c.configErr
}

// applyLogFlags lets --log-level and --log-format win over file and env.
func (c *commandContext) applyLogFlags(cfg *config.Config) error {
	if c.logLevelFlag != nil {
		if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
			cfg.Logging.Level = level
		}
	}
	if c.logFormatFlag != nil {
		if format := strings.ToLower(strings.TrimSpace(*c.logFormatFlag)); format != "" {
			cfg.Logging.Format = format
		}
	}
	return cfg.Validate()
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.runID)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// newRunner wires the TMDB client, builder and resolver behind a batch
// runner bounded to workers.
func (c *commandContext) newRunner(cfg *config.Config, logger *slog.Logger, workers int) (*batch.Runner, error) {
	timeout := time.Duration(cfg.TMDB.TimeoutSeconds) * time.Second
	client, err := tmdb.New(cfg.TMDB.APIToken, cfg.TMDB.BaseURL, cfg.TMDB.Language, tmdb.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("init tmdb client: %w", err)
	}
	builder := game.NewBuilder(game.BuilderOptions{
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		WebBaseURL:   cfg.TMDB.WebBaseURL,
		RunDate:      time.Now(),
	})
	return batch.NewRunner(resolver.New(client, builder, logger), workers, logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
