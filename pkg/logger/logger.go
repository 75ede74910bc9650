// Package logger wraps zerolog for injection and consistent setup: readable
// console output in development, JSON elsewhere.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger options.
type Config struct {
	Env   string // development -> console; anything else -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger is a thin wrapper over zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New creates a structured logger and redirects zerolog's global logger so
// libraries using it share the same output.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With creates a sublogger context with fixed fields.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog exposes the wrapped logger for direct API use.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
