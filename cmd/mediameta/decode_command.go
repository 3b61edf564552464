package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mediameta/internal/logging"
	"mediameta/internal/media/ffprobe"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var noRepair bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode captured ffprobe output",
		Long: "Decode ffprobe JSON captured as an escaped single-line string.\n" +
			"Reads standard input when no file is given or the file is \"-\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = strings.TrimSpace(args[0])
			}
			raw, err := readSource(cmd, source)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "decode")

			var metadata ffprobe.MediaMetadata
			if noRepair {
				metadata, err = ffprobe.Decode(raw)
			} else {
				metadata, err = ffprobe.Parse(string(raw))
			}
			if err != nil {
				logger.Debug("decode failed", logging.String("source", source), logging.Error(err))
				return fmt.Errorf("decode %s: %w", sourceLabel(source), err)
			}
			logger.Debug("decoded metadata",
				logging.String("source", source),
				logging.String(logging.FieldPath, metadata.Format.FileName),
				logging.Int("streams", len(metadata.Streams)),
			)

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

	cmd.Flags().BoolVar(&noRepair, "no-repair", false, "Treat the input as plain ffprobe JSON")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func readSource(cmd *cobra.Command, source string) ([]byte, error) {
	if source == "" || source == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

func sourceLabel(source string) string {
	if source == "" || source == "-" {
		return "stdin"
	}
	return source
}
