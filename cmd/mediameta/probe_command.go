package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediameta/internal/inspect"
	"mediameta/internal/media/ffprobe"
)

type probeResultView struct {
	Path     string        `json:"path"`
	Metadata *metadataView `json:"metadata,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type probeReportView struct {
	BatchID string            `json:"batch_id"`
	Results []probeResultView `json:"results"`
	Total   int               `json:"total"`
	Failed  int               `json:"failed"`
	Unique  int               `json:"unique"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var concurrency int

	cmd := &cobra.Command{
		Use:   "probe <path>...",
		Short: "Run ffprobe against media files and display their metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if concurrency <= 0 {
				concurrency = cfg.FFprobe.Concurrency
			}

			batch := inspect.Batch{
				Prober: ffprobe.Inspector{
					Binary:  cfg.FFprobe.Binary,
					Timeout: cfg.ProbeTimeout(),
				},
				Concurrency: concurrency,
				Logger:      logger,
			}
			report, err := batch.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			summary := inspect.Summarize(report.Results)

			if jsonOutput {
				if err := writeJSON(cmd, newProbeReportView(report, summary)); err != nil {
					return err
				}
			} else {
				opts, err := ctx.displayOptions()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for i, result := range report.Results {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if !result.OK() {
						for _, line := range renderSectionHeader(result.Path, colorize) {
							fmt.Fprintln(out, line)
						}
						fmt.Fprintln(out, renderStatusLine("Probe", statusError, result.Err.Error(), colorize))
						continue
					}
					renderMetadata(out, result.Metadata, opts, colorize)
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%d file(s) probed, %d failed, %d unique\n", summary.Total, summary.Failed, len(summary.Unique))
			}

			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed to probe", summary.Failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum concurrent ffprobe processes (default from config)")
	return cmd
}

func newProbeReportView(report inspect.Report, summary inspect.Summary) probeReportView {
	view := probeReportView{
		BatchID: report.BatchID,
		Results: make([]probeResultView, 0, len(report.Results)),
		Total:   summary.Total,
		Failed:  summary.Failed,
		Unique:  len(summary.Unique),
	}
	for _, result := range report.Results {
		entry := probeResultView{Path: result.Path}
		if result.OK() {
			md := newMetadataView(result.Metadata)
			entry.Metadata = &md
		} else {
			entry.Error = result.Err.Error()
		}
		view.Results = append(view.Results, entry)
	}
	return view
}
