// Package logger provides structured logging functionality for the application.
//
// It configures Go's log/slog package for JSON output at a configurable level
// and carries request-scoped loggers through context.Context.
package logger
