package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"mediameta/internal/media/ffprobe"
)

func newSampleCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Display the debug sample metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var metadata ffprobe.MediaMetadata
			var ok bool
			if dir := cfg.Debug.SampleDir; dir != "" {
				metadata, ok = ffprobe.LoadPlaceholder(ffprobe.FSLoader{FS: os.DirFS(dir)})
			} else {
				metadata, ok = ffprobe.Placeholder()
			}
			if !ok {
				return errors.New("debug sample unavailable")
			}

			if jsonOutput {
				return writeJSON(cmd, newMetadataView(metadata))
			}
			opts, err := ctx.displayOptions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderMetadata(out, metadata, opts, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
