package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the severity level of a log entry
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// StructuredLogger provides enhanced structured logging capabilities
type StructuredLogger struct {
	*slog.Logger
	serviceName    string
	serviceVersion string
	component      string
}

// Config holds configuration for the structured logger
type Config struct {
	Level       LogLevel `json:"level"`
	Format      string   `json:"format"` // "json" or "text"
	ServiceName string   `json:"service_name"`
	Version     string   `json:"version"`
	Component   string   `json:"component"`
	AddSource   bool     `json:"add_source"`
}

// NewStructuredLogger creates a new structured logger instance
func NewStructuredLogger(config Config) *StructuredLogger {
	level := parseLevel(config.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &StructuredLogger{
		Logger:         slog.New(handler),
		serviceName:    config.ServiceName,
		serviceVersion: config.Version,
		component:      config.Component,
	}
}

// NewDefaultLogger returns a text logger at info level for callers that do
// not configure logging explicitly.
func NewDefaultLogger(component string) *StructuredLogger {
	return NewStructuredLogger(Config{
		Level:     LevelInfo,
		Format:    "text",
		Component: component,
	})
}

// WithComponent creates a logger with a specific component context
func (sl *StructuredLogger) WithComponent(component string) *StructuredLogger {
	return &StructuredLogger{
		Logger:         sl.Logger,
		serviceName:    sl.serviceName,
		serviceVersion: sl.serviceVersion,
		component:      component,
	}
}

// InfoWithContext logs an info message with full service context
func (sl *StructuredLogger) InfoWithContext(msg string, args ...any) {
	sl.Logger.Info(msg, sl.withServiceContext(args...)...)
}

// WarnWithContext logs a warning message with full service context
func (sl *StructuredLogger) WarnWithContext(msg string, args ...any) {
	sl.Logger.Warn(msg, sl.withServiceContext(args...)...)
}

// ErrorWithContext logs an error message with full service context
func (sl *StructuredLogger) ErrorWithContext(msg string, err error, args ...any) {
	attrs := sl.withServiceContext(args...)
	if err != nil {
		attrs = append(attrs, "error", err.Error(), "error_type", fmt.Sprintf("%T", err))
	}
	sl.Logger.Error(msg, attrs...)
}

// DebugWithContext logs a debug message with full service context
func (sl *StructuredLogger) DebugWithContext(msg string, args ...any) {
	sl.Logger.Debug(msg, sl.withServiceContext(args...)...)
}

func (sl *StructuredLogger) withServiceContext(args ...any) []any {
	contextArgs := make([]any, 0, len(args)+6)
	contextArgs = append(contextArgs, args...)
	if sl.serviceName != "" {
		contextArgs = append(contextArgs, "service", sl.serviceName)
	}
	if sl.serviceVersion != "" {
		contextArgs = append(contextArgs, "version", sl.serviceVersion)
	}
	if sl.component != "" {
		contextArgs = append(contextArgs, "component", sl.component)
	}
	return contextArgs
}

func parseLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
