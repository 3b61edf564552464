// Package preflight provides readiness checks for the binaries and paths
// mediameta depends on.
//
// The CLI "mediameta check" command runs RunAll and CheckSystemDeps to show
// whether ffprobe answers, whether the log directory is writable, and whether
// a configured debug sample decodes. Checks for unset paths are skipped.
package preflight
