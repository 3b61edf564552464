// Package config loads, normalizes, and validates mediameta configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours the FFPROBE_BINARY environment fallback. The
// Config type gathers every knob the CLI needs: how ffprobe is invoked, how
// values are displayed, where logs go, and where a debug sample lives.
//
// Always obtain settings through this package so callers receive expanded
// paths, canonical log formats, and clear validation errors.
package config
