package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fansort/internal/classify"
	"fansort/internal/config"
	"fansort/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// configPath returns the --config flag value, or empty for default
// resolution.
func (c *commandContext) configPath() string {
	return flagValue(c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the run logger from config, applying any flag overrides,
// and tags every record with a fresh run identifier.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	if level := flagValue(c.logLevelFlag); level != "" {
		cfg.Logging.Level = level
	}
	if format := flagValue(c.logFormatFlag); format != "" {
		cfg.Logging.Format = format
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), nil
}

// newClassifier builds a classifier whose keyword set and registry are the
// embedded defaults extended with configured extras.
func (c *commandContext) newClassifier(cfg *config.Config) *classify.Classifier {
	return classify.New(
		classify.DefaultKeywords(cfg.Keywords.Extra...),
		classify.DefaultRegistry(cfg.Registry.ExtraGroups...),
	)
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
