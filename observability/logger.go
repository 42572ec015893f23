// Package observability provides structured logging for gosln.
package observability

import (
	"io"
	"os"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
)

// Logger is the gosln logger interface.
// Wraps mtlog for structured, message-template logging.
type Logger interface {
	// Verbose logs detailed diagnostic information
	Verbose(messageTemplate string, args ...any)

	// Debug logs debugging information
	Debug(messageTemplate string, args ...any)

	// Info logs informational messages
	Info(messageTemplate string, args ...any)

	// Warn logs warning messages
	Warn(messageTemplate string, args ...any)

	// Error logs error messages
	Error(messageTemplate string, args ...any)

	// ForContext creates a child logger with an additional property
	ForContext(key string, value any) Logger
}

// LogLevel represents log verbosity level
type LogLevel int

const (
	// VerboseLevel is the most detailed logging level.
	VerboseLevel LogLevel = iota
	// DebugLevel is for debug messages.
	DebugLevel
	// InfoLevel is for informational messages.
	InfoLevel
	// WarnLevel is for warning messages.
	WarnLevel
	// ErrorLevel is for error messages.
	ErrorLevel
)

// mtlogAdapter wraps an mtlog logger to implement the gosln Logger interface
type mtlogAdapter struct {
	logger core.Logger
}

// NewLogger creates a logger writing to the given output at the given level
func NewLogger(output io.Writer, level LogLevel) Logger {
	opts := []mtlog.Option{
		mtlog.WithSink(sinks.NewConsoleSinkWithWriter(output)),
		mtlog.WithTimestamp(),
	}

	switch level {
	case VerboseLevel:
		opts = append(opts, mtlog.Verbose())
	case DebugLevel:
		opts = append(opts, mtlog.Debug())
	case InfoLevel:
		opts = append(opts, mtlog.Information())
	case WarnLevel:
		opts = append(opts, mtlog.Warning())
	case ErrorLevel:
		opts = append(opts, mtlog.Error())
	}

	return &mtlogAdapter{logger: mtlog.New(opts...)}
}

// NewDefaultLogger creates a logger with console output and Info level
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, InfoLevel)
}

func (a *mtlogAdapter) Verbose(messageTemplate string, args ...any) {
	a.logger.Verbose(messageTemplate, args...)
}

func (a *mtlogAdapter) Debug(messageTemplate string, args ...any) {
	a.logger.Debug(messageTemplate, args...)
}

func (a *mtlogAdapter) Info(messageTemplate string, args ...any) {
	a.logger.Info(messageTemplate, args...)
}

func (a *mtlogAdapter) Warn(messageTemplate string, args ...any) {
	a.logger.Warn(messageTemplate, args...)
}

func (a *mtlogAdapter) Error(messageTemplate string, args ...any) {
	a.logger.Error(messageTemplate, args...)
}

func (a *mtlogAdapter) ForContext(key string, value any) Logger {
	return &mtlogAdapter{logger: a.logger.ForContext(key, value)}
}

// nullLogger discards all output
type nullLogger struct{}

// NewNullLogger creates a logger that discards all output
func NewNullLogger() Logger {
	return &nullLogger{}
}

func (n *nullLogger) Verbose(messageTemplate string, args ...any) {}
func (n *nullLogger) Debug(messageTemplate string, args ...any)   {}
func (n *nullLogger) Info(messageTemplate string, args ...any)    {}
func (n *nullLogger) Warn(messageTemplate string, args ...any)    {}
func (n *nullLogger) Error(messageTemplate string, args ...any)   {}
func (n *nullLogger) ForContext(key string, value any) Logger     { return n }
