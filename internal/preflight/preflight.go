package preflight

import (
	"context"

	"mediameta/internal/config"
	"mediameta/internal/media/ffprobe"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// A nil runner uses ffprobe.ExecRunner.
func RunAll(ctx context.Context, cfg *config.Config, runner ffprobe.Runner) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckFFprobeVersion(ctx, runner, cfg.FFprobe.Binary, cfg.ProbeTimeout())}

	if cfg.Logging.Dir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir, true))
	}

	if cfg.Debug.SampleDir != "" {
		dirResult := CheckDirectoryAccess("Sample directory", cfg.Debug.SampleDir, false)
		results = append(results, dirResult)
		if dirResult.Passed {
			results = append(results, CheckSample(cfg.Debug.SampleDir))
		}
	}

	return results
}
