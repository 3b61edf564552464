package ffprobe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the ffprobe executable resolved from PATH when none is configured.
const DefaultBinary = "ffprobe"

// Runner executes an external command and returns its standard output and
// standard error separately.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) (stdout []byte, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Inspector runs ffprobe against files and decodes the result.
type Inspector struct {
	// Binary defaults to DefaultBinary.
	Binary string
	// Runner defaults to ExecRunner.
	Runner Runner
	// Timeout bounds a single invocation; zero means no limit beyond ctx.
	Timeout time.Duration
}

// Inspect executes ffprobe against path and decodes its JSON response. The
// binary's output is already well-formed JSON, so it is not repaired.
func (i Inspector) Inspect(ctx context.Context, path string) (MediaMetadata, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return MediaMetadata{}, errors.New("ffprobe inspect: empty path")
	}

	binary := strings.TrimSpace(i.Binary)
	if binary == "" {
		binary = DefaultBinary
	}
	runner := i.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}

	stdout, stderr, err := runner.Run(ctx, binary, probeArgs(path)...)
	if err != nil {
		return MediaMetadata{}, &ProbeError{Path: path, Err: err, Stderr: string(stderr)}
	}
	return Decode(stdout)
}

// Inspect runs binary against path with the default runner.
func Inspect(ctx context.Context, binary string, path string) (MediaMetadata, error) {
	return Inspector{Binary: binary}.Inspect(ctx, path)
}

func probeArgs(path string) []string {
	return []string{"-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path}
}
