package middleware

import (
	"log/slog"
)

// CORSLogger receives CORS policy events.
type CORSLogger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}

// SlogAdapter adapts a *slog.Logger to CORSLogger.
type SlogAdapter struct {
	Logger *slog.Logger
}

func (a *SlogAdapter) Info(msg string, fields map[string]interface{}) {
	a.Logger.Info(msg, toArgs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.Logger.Warn(msg, toArgs(fields)...)
}

func (a *SlogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.Logger.Debug(msg, toArgs(fields)...)
}

func toArgs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return args
}

// NoOpLogger discards everything. Useful in tests.
type NoOpLogger struct{}

func (l *NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (l *NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
