// ABOUTME: Logrus logger implementation with configurable level and format
// ABOUTME: Bridges structured field maps onto logrus.Fields

package logrus

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// Config controls the logrus logger.
type Config struct {
	// Level is the minimum level to emit: "debug", "info", "warn", or
	// "error". Defaults to "info" when empty or unrecognized.
	Level string

	// JSONFormat switches output from text lines to JSON lines.
	JSONFormat bool
}

// NewLogrusLogger creates a logrus-backed logger with the given configuration
func NewLogrusLogger(cfg Config) *LogrusLogger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.JSONFormat {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return &LogrusLogger{log: log}
}

// NewLogrusLoggerFrom wraps an already configured logrus instance.
// Useful when the host application manages its own logrus setup.
func NewLogrusLoggerFrom(log *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *LogrusLogger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}
