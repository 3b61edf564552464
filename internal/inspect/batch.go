package inspect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mediameta/internal/logging"
	"mediameta/internal/media/ffprobe"
)

// DefaultConcurrency bounds a Batch whose Concurrency is unset.
const DefaultConcurrency = 4

// ErrNotRegularFile reports a path that exists but cannot be probed as a file.
var ErrNotRegularFile = errors.New("not a regular file")

// Prober inspects one media file. ffprobe.Inspector implements it.
type Prober interface {
	Inspect(ctx context.Context, path string) (ffprobe.MediaMetadata, error)
}

// Result is the outcome for one input path. Exactly one of Metadata and Err
// is meaningful.
type Result struct {
	Path     string
	Metadata ffprobe.MediaMetadata
	Err      error
	Elapsed  time.Duration
}

// OK reports whether the path decoded successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report is the outcome of one Batch run.
type Report struct {
	BatchID string
	Results []Result
}

// Batch probes many files at once.
type Batch struct {
	Prober      Prober
	Concurrency int
	Logger      *slog.Logger
}

// Run probes every path and returns results in input order. It only fails
// when no Prober is configured; per-file problems land in Result.Err.
func (b Batch) Run(ctx context.Context, paths []string) (Report, error) {
	if b.Prober == nil {
		return Report{}, errors.New("inspect: prober is required")
	}
	workers := b.Concurrency
	if workers <= 0 {
		workers = DefaultConcurrency
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	report := Report{
		BatchID: uuid.NewString(),
		Results: make([]Result, len(paths)),
	}
	ctx = logging.WithBatchID(ctx, report.BatchID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(b.Logger, "inspect"))
	logger.Debug("batch started",
		logging.Int("files", len(paths)),
		logging.Int("workers", workers),
	)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				report.Results[idx] = b.probeOne(ctx, logger, paths[idx])
			}
		}()
	}

	for idx := range paths {
		if err := ctx.Err(); err != nil {
			report.Results[idx] = Result{Path: paths[idx], Err: err}
			continue
		}
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	summary := Summarize(report.Results)
	logger.Info("batch finished",
		logging.Int("files", summary.Total),
		logging.Int("failed", summary.Failed),
		logging.Int("unique", len(summary.Unique)),
	)
	return report, nil
}

func (b Batch) probeOne(ctx context.Context, logger *slog.Logger, path string) Result {
	result := Result{Path: path}
	fileLogger := logger.With(logging.String(logging.FieldPath, path))

	if err := checkFile(path); err != nil {
		result.Err = err
		fileLogger.Warn("skipping file", logging.Error(err))
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	metadata, err := b.Prober.Inspect(ctx, path)
	result.Elapsed = time.Since(start)
	if err != nil {
		result.Err = err
		fileLogger.Warn("probe failed",
			logging.Error(err),
			logging.Duration("elapsed", result.Elapsed),
		)
		return result
	}

	result.Metadata = metadata
	fileLogger.Debug("probed file",
		logging.Int("streams", len(metadata.Streams)),
		logging.String("format", metadata.Format.FormatName),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result
}

func checkFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return nil
}
