// Package logger provides structured logging functionality for the
// application using Go's standard library log/slog package. Setup
// configures a JSON logger from the server configuration and installs
// it as the process default; the context helpers let request-scoped
// loggers (e.g. carrying a trace ID) flow through handler code.
package logger
