package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"mediameta/internal/testsupport"
)

func TestProbeRendersEveryFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedFFprobe(clipJSON, 0))
	first := filepath.Join(env.baseDir, "a.mkv")
	second := filepath.Join(env.baseDir, "b.mkv")
	testsupport.WriteMediaFile(t, first, 128)
	testsupport.WriteMediaFile(t, second, 128)

	out, _, err := runCLI(t, []string{"probe", first, second}, env.configPath, "")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if got := strings.Count(out, "== /media/clip.mkv =="); got != 2 {
		t.Fatalf("expected two rendered files, got %d in %q", got, out)
	}
	requireContains(t, out, "2 file(s) probed, 0 failed, 1 unique")
}

func TestProbeJSONReportsFailuresWithoutAborting(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedFFprobe(clipJSON, 0))
	present := filepath.Join(env.baseDir, "present.mkv")
	testsupport.WriteMediaFile(t, present, 64)
	missing := filepath.Join(env.baseDir, "missing.mkv")

	out, _, err := runCLI(t, []string{"probe", "--json", missing, present}, env.configPath, "")
	if err == nil {
		t.Fatal("expected probe to report the failed file")
	}
	requireContains(t, err.Error(), "1 of 2")

	var report probeReportView
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if report.BatchID == "" || report.Total != 2 || report.Failed != 1 || report.Unique != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Results[0].Path != missing || report.Results[0].Error == "" {
		t.Fatalf("expected first result to fail: %+v", report.Results[0])
	}
	if report.Results[1].Metadata == nil || report.Results[1].Metadata.Format.Filename != "/media/clip.mkv" {
		t.Fatalf("expected second result to decode: %+v", report.Results[1])
	}
}

func TestProbeSurfacesFFprobeFailure(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedFFprobe("", 1))
	path := filepath.Join(env.baseDir, "broken.mkv")
	testsupport.WriteMediaFile(t, path, 64)

	out, _, err := runCLI(t, []string{"probe", path}, env.configPath, "")
	if err == nil {
		t.Fatal("expected probe failure")
	}
	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "stub failure")
}

func TestProbeRequiresPaths(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"probe"}, env.configPath, ""); err == nil {
		t.Fatal("expected argument error")
	}
}
