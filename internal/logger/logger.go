package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/keepmind9/combokey/pkg/constants"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger *logrus.Logger
)

// Config represents the configuration for the logger
type Config struct {
	Level        string
	File         string
	MaxSize      int
	MaxBackups   int
	MaxAge       int
	Compress     bool
	EnableStdout bool
}

// InitLogger initializes the global logger with the given configuration
func InitLogger(config Config) error {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	var writers []io.Writer

	// File output with rotation
	if config.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.File), 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSize,    // megabytes
			MaxBackups: config.MaxBackups, // number of backups
			MaxAge:     config.MaxAge,     // days
			Compress:   config.Compress,
		})
	}

	// CLI output goes to stdout, so log lines go to stderr
	if config.EnableStdout {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	if level >= logrus.DebugLevel {
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05Z",
		})
	}

	globalLogger = l
	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if globalLogger == nil {
		// Quiet by default: a library caller that never calls InitLogger gets warnings only
		globalLogger = logrus.New()
		globalLogger.SetLevel(logrus.WarnLevel)
		globalLogger.SetOutput(os.Stderr)
		globalLogger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return globalLogger
}

// LoggingName returns a bracketed prefix for log lines, e.g. "[combokey table]".
// The first non-empty candidate is used.
func LoggingName(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return "[" + constants.LogNamePrefix + " " + c + "]"
		}
	}
	return "[" + constants.LogNamePrefix + "]"
}

// Component returns an entry tagged with the component's logging name
func Component(name string) *logrus.Entry {
	return GetLogger().WithField("component", LoggingName(name))
}

// Warnf logs a formatted message at warning level
func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

// WithFields returns a logger entry with structured fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}

// WithField returns a logger entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return GetLogger().WithField(key, value)
}
