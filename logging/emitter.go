package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Severity classifies an emitted audit line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the SIEM-facing name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Emitter delivers one formatted line to a named logging channel.
// Implementations own delivery; callers never retry a failed emit.
type Emitter interface {
	Emit(channel string, severity Severity, message string)
}

// LogrusEmitter writes audit lines through a logrus logger, carrying the
// channel name as an entry field so downstream collectors can route on it.
type LogrusEmitter struct {
	logger *logrus.Logger
}

// NewLogrusEmitter wraps an existing logrus logger as an Emitter.
func NewLogrusEmitter(logger *logrus.Logger) *LogrusEmitter {
	return &LogrusEmitter{logger: logger}
}

// Emit logs the message on the channel at the matching logrus level.
func (e *LogrusEmitter) Emit(channel string, severity Severity, message string) {
	entry := e.logger.WithField("channel", channel)

	switch severity {
	case SeverityWarning:
		entry.Warn(message)
	case SeverityError:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}

// NewLogger builds the process-wide audit logger. Format is "json" for SIEM
// ingestion or "text" for local development; anything else falls back to json.
func NewLogger(format string) *logrus.Logger {
	logger := &logrus.Logger{
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}

	switch format {
	case "text":
		logger.Formatter = &logrus.TextFormatter{}
	default:
		logger.Formatter = &logrus.JSONFormatter{}
	}

	return logger
}
