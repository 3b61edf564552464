package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"mediameta/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// Logs stay on stderr unless WithLogDir is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Display.Locale = "en_US"
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithLocale pins the display locale.
func WithLocale(value string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Display.Locale = value
	}
}

// WithLogDir routes the log file into the test's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// WithStubbedFFprobe writes an executable that prints payload to stdout and
// exits with exitCode, and points the config at it.
func WithStubbedFFprobe(payload string, exitCode int) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		payloadPath := filepath.Join(binDir, "ffprobe.out")
		if err := os.WriteFile(payloadPath, []byte(payload), 0o644); err != nil {
			b.t.Fatalf("write stub payload: %v", err)
		}
		script := "#!/bin/sh\ncat '" + payloadPath + "'\n"
		if exitCode != 0 {
			script += "echo 'stub failure' >&2\n"
		}
		script += "exit " + strconv.Itoa(exitCode) + "\n"
		target := filepath.Join(binDir, "ffprobe")
		if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
			b.t.Fatalf("write stub ffprobe: %v", err)
		}
		b.cfg.FFprobe.Binary = target
	}
}
