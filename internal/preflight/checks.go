package preflight

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"mediameta/internal/config"
	"mediameta/internal/deps"
	"mediameta/internal/media/ffprobe"
)

const defaultVersionTimeout = 10 * time.Second

// VersionCheckName names the Result produced by CheckFFprobeVersion.
const VersionCheckName = "FFprobe version"

// CheckFFprobeVersion runs "<binary> -version" and reports the first line of
// its banner.
func CheckFFprobeVersion(ctx context.Context, runner ffprobe.Runner, binary string, timeout time.Duration) Result {
	const name = VersionCheckName
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = ffprobe.DefaultBinary
	}
	if runner == nil {
		runner = ffprobe.ExecRunner{}
	}
	if timeout <= 0 {
		timeout = defaultVersionTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, stderr, err := runner.Run(ctx, binary, "-version")
	if err != nil {
		detail := fmt.Sprintf("%s (error: %v)", binary, err)
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			detail = fmt.Sprintf("%s (error: %v: %s)", binary, err, msg)
		}
		return Result{Name: name, Detail: detail}
	}
	line := firstLine(stdout)
	if !strings.HasPrefix(line, "ffprobe version") {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: unexpected banner %q)", binary, line)}
	}
	return Result{Name: name, Passed: true, Detail: line}
}

// CheckDirectoryAccess verifies path is a directory the process can read
// and, when writable is set, write.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := uint32(unix.R_OK | unix.X_OK)
	label := "read ok"
	if writable {
		mode |= unix.W_OK
		label = "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, label)}
}

// CheckSample verifies that dir holds a decodable debug sample.
func CheckSample(dir string) Result {
	const name = "Debug sample"
	path := filepath.Join(dir, ffprobe.SampleName)
	metadata, ok := ffprobe.LoadPlaceholder(ffprobe.FSLoader{FS: os.DirFS(dir)})
	if !ok {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: missing or not decodable)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d streams)", path, len(metadata.Streams))}
}

// CheckSystemDeps evaluates the external binaries named by cfg.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	if cfg == nil {
		return nil
	}
	return deps.CheckBinaries([]deps.Requirement{deps.FFprobeRequirement(cfg.FFprobe.Binary)})
}

func firstLine(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
