// Package logging assembles the slog loggers used by mediameta.
//
// It owns the console and JSON handlers, maps configured levels and outputs
// onto them, and carries batch identifiers through context so every line
// emitted while probing a batch can be correlated. Logs default to stderr so
// that stdout stays reserved for command output.
package logging
