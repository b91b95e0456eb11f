package mock

import (
	"slices"

	"cosmossdk.io/log"
)

var _ log.Logger = (*MockLogger)(nil)

// Log levels recorded by MockLogger
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// LogEntry is a single recorded log line.
type LogEntry struct {
	Level   string
	Message string
	Params  []any
}

// MockLogger records every log line so tests can assert on what a keeper reported.
// Loggers derived with With share the records of their parent.
type MockLogger struct {
	entries *[]LogEntry
	with    []any
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{entries: new([]LogEntry)}
}

func (l *MockLogger) record(level, msg string, params []any) {
	*l.entries = append(*l.entries, LogEntry{Level: level, Message: msg, Params: append(slices.Clone(l.with), params...)})
}

// Debug implements log.Logger.
func (l *MockLogger) Debug(msg string, params ...any) { l.record(LevelDebug, msg, params) }

// Info implements log.Logger.
func (l *MockLogger) Info(msg string, params ...any) { l.record(LevelInfo, msg, params) }

// Warn implements log.Logger.
func (l *MockLogger) Warn(msg string, params ...any) { l.record(LevelWarn, msg, params) }

// Error implements log.Logger.
func (l *MockLogger) Error(msg string, params ...any) { l.record(LevelError, msg, params) }

// With implements log.Logger.
func (l *MockLogger) With(params ...any) log.Logger {
	return &MockLogger{entries: l.entries, with: append(slices.Clone(l.with), params...)}
}

// Impl implements log.Logger.
func (l *MockLogger) Impl() any {
	return l
}

// Entries returns the recorded log lines of the given level in order.
func (l *MockLogger) Entries(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range *l.entries {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// HasError returns true if an error with the given message was logged
func (l *MockLogger) HasError(msg string) bool {
	return slices.ContainsFunc(l.Entries(LevelError), func(entry LogEntry) bool {
		return entry.Message == msg
	})
}
