package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeFFprobe()
	c.normalizeDisplay()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeFFprobe() {
	c.FFprobe.Binary = strings.TrimSpace(c.FFprobe.Binary)
	if c.FFprobe.Binary == "" || c.FFprobe.Binary == defaultFFprobeBinary {
		if value, ok := os.LookupEnv(ffprobeBinaryEnvVar); ok && strings.TrimSpace(value) != "" {
			c.FFprobe.Binary = strings.TrimSpace(value)
		}
	}
	if c.FFprobe.Binary == "" {
		c.FFprobe.Binary = defaultFFprobeBinary
	}
	if c.FFprobe.TimeoutSeconds == 0 {
		c.FFprobe.TimeoutSeconds = defaultProbeTimeout
	}
	if c.FFprobe.Concurrency == 0 {
		c.FFprobe.Concurrency = defaultConcurrency
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.Locale = strings.TrimSpace(c.Display.Locale)
	c.Display.Rounding = strings.ToLower(strings.TrimSpace(c.Display.Rounding))
	if c.Display.Rounding == "" {
		c.Display.Rounding = defaultRounding
	}
	c.Display.SizeUnit = strings.ToLower(strings.TrimSpace(c.Display.SizeUnit))
	if c.Display.SizeUnit == "" {
		c.Display.SizeUnit = defaultSizeUnit
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	if c.Debug.SampleDir, err = expandPath(strings.TrimSpace(c.Debug.SampleDir)); err != nil {
		return fmt.Errorf("debug.sample_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
