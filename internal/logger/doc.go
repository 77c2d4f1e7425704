// Package logger builds the slog.Logger used for diagnostics. User-facing
// command output does not go through it.
package logger
