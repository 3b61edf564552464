// Package main hosts the mediameta CLI entrypoint and command graph.
//
// The Cobra command tree decodes captured ffprobe output, probes media files
// in batches, prints the bundled debug sample, and scaffolds configuration.
// Configuration, locale, and logger resolution live in commandContext so the
// subcommands only deal with rendering.
package main
