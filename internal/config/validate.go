package config

import (
	"errors"
	"fmt"

	"mediameta/internal/locale"
	"mediameta/internal/units"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFFprobe(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFFprobe() error {
	if c.FFprobe.Binary == "" {
		return errors.New("ffprobe.binary must be set")
	}
	if c.FFprobe.TimeoutSeconds < 0 {
		return errors.New("ffprobe.timeout_seconds must be positive")
	}
	if c.FFprobe.Concurrency < 1 || c.FFprobe.Concurrency > maxConcurrency {
		return fmt.Errorf("ffprobe.concurrency must be between 1 and %d", maxConcurrency)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.Locale != "" {
		if _, err := locale.Parse(c.Display.Locale); err != nil {
			return fmt.Errorf("display.locale: %w", err)
		}
	}
	if _, err := units.ParseRounding(c.Display.Rounding); err != nil {
		return fmt.Errorf("display.rounding: %w", err)
	}
	if _, err := units.ParseUnit(c.Display.SizeUnit); err != nil {
		return fmt.Errorf("display.size_unit: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}
