// Package logger wraps logrus with the structured fields used across the SDK.
// Every client request is logged through an Entry tagged with the component
// that produced it; credentials never pass through this package.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields type alias for logrus.Fields to maintain compatibility
type Fields map[string]interface{}

// Log wraps logrus.Logger with additional functionality
type Log struct {
	*logrus.Logger
}

// Entry wraps logrus.Entry with additional functionality
type Entry struct {
	*logrus.Entry
}

// New creates a JSON logger writing to 'out' at the level named by 'level'.
// Unknown or empty levels fall back to info. Passing a nil writer logs to
// stderr.
func New(level string, out io.Writer) *Log {
	l := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	l.SetLevel(ParseLevel(level))
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return &Log{Logger: l}
}

// NewRotating creates a JSON logger writing to a size-rotated file at 'path'.
func NewRotating(level, path string, maxSizeMB, maxBackups, maxAgeDays int) (*Log, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 100
	}
	return New(level, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *Log {
	l := New("panic", io.Discard)
	return l
}

// ParseLevel maps a level name onto a logrus.Level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *Log) WithComponent(component string) *Entry {
	return &Entry{Entry: l.Logger.WithField("component", component)}
}

func (l *Log) WithFields(fields Fields) *Entry {
	return &Entry{Entry: l.Logger.WithFields(logrus.Fields(fields))}
}

func (l *Log) WithError(err error) *Entry {
	return &Entry{Entry: l.Logger.WithError(err)}
}

func (e *Entry) WithComponent(component string) *Entry {
	return &Entry{Entry: e.Entry.WithField("component", component)}
}

func (e *Entry) WithFields(fields Fields) *Entry {
	return &Entry{Entry: e.Entry.WithFields(logrus.Fields(fields))}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{Entry: e.Entry.WithError(err)}
}

// LogRequestEntry records one REST round trip.
func LogRequestEntry(entry *Entry, method, endpoint string, status int, duration time.Duration) {
	entry.WithFields(Fields{
		"method":      method,
		"endpoint":    endpoint,
		"status":      status,
		"duration_ms": float64(duration.Nanoseconds()) / 1e6,
	}).Debug("request completed")
}
