package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediameta/internal/deps"
	"mediameta/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report external dependency, path, and locale status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts, err := ctx.displayOptions()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			statuses := preflight.CheckSystemDeps(cfg)
			for _, status := range statuses {
				switch {
				case status.Available:
					fmt.Fprintln(out, renderStatusLine(status.Name, statusOK, status.Command, colorize))
				case status.Optional:
					fmt.Fprintln(out, renderStatusLine(status.Name, statusWarn, status.Detail, colorize))
				default:
					fmt.Fprintln(out, renderStatusLine(status.Name, statusError, status.Detail, colorize))
				}
			}

			failed := 0
			ffprobeFound := len(statuses) > 0 && statuses[0].Available
			for _, result := range preflight.RunAll(cmd.Context(), cfg, nil) {
				switch {
				case result.Passed:
					fmt.Fprintln(out, renderStatusLine(result.Name, statusOK, result.Detail, colorize))
				case result.Name == preflight.VersionCheckName && !ffprobeFound:
					// reported as missing above
				default:
					failed++
					fmt.Fprintln(out, renderStatusLine(result.Name, statusError, result.Detail, colorize))
				}
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Display", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderField("Locale", opts.Locale.Current().Identifier()))
			fmt.Fprintln(out, renderField("Rounding", opts.Rounding.String()))
			fmt.Fprintln(out, renderField("Size unit", opts.SizeUnit.String()))

			if missing := deps.Missing(statuses); len(missing) > 0 {
				return fmt.Errorf("%d required dependency(ies) missing", len(missing))
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
