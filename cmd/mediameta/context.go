package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mediameta/internal/config"
	"mediameta/internal/locale"
	"mediameta/internal/logging"
	"mediameta/internal/units"
)

type commandContext struct {
	configFlag   *string
	localeFlag   *string
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

func newCommandContext(configFlag, localeFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		localeFlag:   localeFlag,
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
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, flagValue(c.logLevelFlag))
	})
	return c.logger, c.loggerErr
}

// displayOptions resolves how values are rendered: --locale beats
// display.locale, which beats the environment.
func (c *commandContext) displayOptions() (displayOptions, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return displayOptions{}, err
	}
	override := flagValue(c.localeFlag)
	if override == "" {
		override = cfg.Display.Locale
	}
	provider, err := locale.FromConfig(override)
	if err != nil {
		return displayOptions{}, fmt.Errorf("locale %q: %w", override, err)
	}
	rounding, err := units.ParseRounding(cfg.Display.Rounding)
	if err != nil {
		return displayOptions{}, err
	}
	unit, err := units.ParseUnit(cfg.Display.SizeUnit)
	if err != nil {
		return displayOptions{}, err
	}
	return displayOptions{Locale: provider, Rounding: rounding, SizeUnit: unit}, nil
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
