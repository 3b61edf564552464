package ffprobe

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	binary   string
	args     []string
	deadline bool
}

func (f *fakeRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, []byte, error) {
	f.binary = binary
	f.args = args
	_, f.deadline = ctx.Deadline()
	return f.stdout, f.stderr, f.err
}

func TestInspectorDecodesOutput(t *testing.T) {
	runner := &fakeRunner{stdout: []byte(`{"format": {"filename": "/m/a.mkv", "size": "2048"}, "streams": []}`)}
	inspector := Inspector{Runner: runner, Timeout: time.Minute}

	metadata, err := inspector.Inspect(context.Background(), " /m/a.mkv ")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if metadata.Format.Size == nil || *metadata.Format.Size != 2048 {
		t.Fatalf("unexpected size: %v", metadata.Format.Size)
	}
	if runner.binary != DefaultBinary {
		t.Fatalf("expected default binary, got %q", runner.binary)
	}
	if got := strings.Join(runner.args, " "); got != "-v error -hide_banner -show_format -show_streams -of json -- /m/a.mkv" {
		t.Fatalf("unexpected args: %s", got)
	}
	if !runner.deadline {
		t.Fatal("expected timeout to set a deadline")
	}
}

func TestInspectorWrapsRunnerFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1"), stderr: []byte("No such file or directory\n")}
	_, err := Inspector{Binary: "/opt/ffprobe", Runner: runner}.Inspect(context.Background(), "missing.mkv")

	var probeErr *ProbeError
	if !errors.As(err, &probeErr) {
		t.Fatalf("expected *ProbeError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "No such file or directory") {
		t.Fatalf("expected stderr in message, got %q", err.Error())
	}
	if runner.binary != "/opt/ffprobe" {
		t.Fatalf("unexpected binary: %q", runner.binary)
	}
	if runner.deadline {
		t.Fatal("expected no deadline without timeout")
	}
}

func TestInspectorSurfacesDecodeErrors(t *testing.T) {
	runner := &fakeRunner{stdout: []byte(`{"format": {}}`)}
	_, err := Inspector{Runner: runner}.Inspect(context.Background(), "a.mkv")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestInspectorRejectsEmptyPath(t *testing.T) {
	runner := &fakeRunner{}
	if _, err := (Inspector{Runner: runner}).Inspect(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
	if runner.binary != "" {
		t.Fatal("runner must not be invoked for an empty path")
	}
}
