// Package log builds the zerolog loggers used around the toolkit. The
// default logger writes human-readable console output; any io.Writer can be
// substituted for structured JSON sinks.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
}

// SetGlobalLevel sets the process-wide minimum log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// New creates a console logger on stdout.
func New(opts ...Option) *Logger {
	return NewWriter(console(), opts...)
}

// NewWriter creates a logger on an arbitrary writer emitting structured JSON.
func NewWriter(w io.Writer, opts ...Option) *Logger {
	logger := &Logger{
		Logger: zerolog.New(w).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}

func console() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         os.Stdout,
		TimeFormat:  time.DateTime,
		FormatLevel: formatLevel,
	}
}

func formatLevel(i any) string {
	return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
}
