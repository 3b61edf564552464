package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediameta/internal/config"
)

type versionRunner struct {
	stdout string
	stderr string
	err    error
	args   []string
}

func (r *versionRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	r.args = args
	return []byte(r.stdout), []byte(r.stderr), r.err
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, true)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "read/write ok") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), false)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, false)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckFFprobeVersion(t *testing.T) {
	runner := &versionRunner{stdout: "ffprobe version 7.1 Copyright (c) 2007-2024 the FFmpeg developers\nbuilt with gcc\n"}
	result := CheckFFprobeVersion(context.Background(), runner, "", 0)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.HasPrefix(result.Detail, "ffprobe version 7.1") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
	if len(runner.args) != 1 || runner.args[0] != "-version" {
		t.Fatalf("unexpected args: %v", runner.args)
	}
}

func TestCheckFFprobeVersionFailures(t *testing.T) {
	failed := CheckFFprobeVersion(context.Background(), &versionRunner{err: errors.New("exit status 1"), stderr: "bad build"}, "ffprobe", 0)
	if failed.Passed || !strings.Contains(failed.Detail, "bad build") {
		t.Fatalf("expected failure with stderr, got %+v", failed)
	}

	banner := CheckFFprobeVersion(context.Background(), &versionRunner{stdout: "something else\n"}, "ffprobe", 0)
	if banner.Passed {
		t.Fatal("expected unexpected banner to fail")
	}
}

func TestCheckSample(t *testing.T) {
	dir := t.TempDir()
	if result := CheckSample(dir); result.Passed {
		t.Fatal("expected missing sample to fail")
	}
	payload := `{"streams":[{"index":0,"codec_type":"audio"}],"format":{"filename":"s.mka"}}`
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckSample(dir)
	if !result.Passed || !strings.Contains(result.Detail, "1 streams") {
		t.Fatalf("expected sample to pass, got %+v", result)
	}
}

func TestRunAllSkipsUnsetPaths(t *testing.T) {
	cfg := config.Default()
	runner := &versionRunner{stdout: "ffprobe version 6.0\n"}

	results := RunAll(context.Background(), &cfg, runner)
	if len(results) != 1 || !results[0].Passed {
		t.Fatalf("expected only the version check, got %+v", results)
	}

	cfg.Logging.Dir = t.TempDir()
	cfg.Debug.SampleDir = filepath.Join(t.TempDir(), "missing")
	results = RunAll(context.Background(), &cfg, runner)
	if len(results) != 3 {
		t.Fatalf("expected version, log dir and sample dir checks, got %+v", results)
	}
	if !results[1].Passed || results[2].Passed {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestCheckSystemDeps(t *testing.T) {
	cfg := config.Default()
	cfg.FFprobe.Binary = "clearly-not-present-ffprobe"
	statuses := CheckSystemDeps(&cfg)
	if len(statuses) != 1 || statuses[0].Available {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
	if CheckSystemDeps(nil) != nil {
		t.Fatal("expected nil for nil config")
	}
}
