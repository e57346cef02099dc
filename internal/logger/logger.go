package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with field-map helpers.
type Logger struct {
	zlog zerolog.Logger
}

// Options tunes a Logger beyond what the environment implies.
type Options struct {
	// Level overrides the environment's default level ("debug", "info", ...).
	Level string
	// Output defaults to stdout.
	Output io.Writer
}

// New creates a Logger for the given environment.
// Development gets colored console output at debug level; every other
// environment gets JSON at info level.
func New(env string) *Logger {
	return NewWithOptions(env, Options{})
}

// NewWithOptions creates a Logger for env with the given overrides.
func NewWithOptions(env string, opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if env == "development" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339

	zlog := zerolog.New(out).
		Level(ParseLevel(opts.Level, defaultLevel(env))).
		With().
		Timestamp().
		Str("service", "landregistry").
		Logger()

	return &Logger{zlog: zlog}
}

func defaultLevel(env string) zerolog.Level {
	if env == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// ParseLevel maps a level name to a zerolog level, falling back when the
// name is empty or unknown.
func ParseLevel(name string, fallback zerolog.Level) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return fallback
	}
	return level
}

func withFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for key, value := range fields {
		event = event.Interface(key, value)
	}
	return event
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	withFields(l.zlog.Debug(), fields).Msg(msg)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	withFields(l.zlog.Info(), fields).Msg(msg)
}

// Warn logs a warning message with optional fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	withFields(l.zlog.Warn(), fields).Msg(msg)
}

// Error logs an error message with an error and optional fields.
func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	withFields(l.zlog.Error().Err(err), fields).Msg(msg)
}

// Fatal logs a fatal message and exits the process.
func (l *Logger) Fatal(msg string, err error, fields map[string]interface{}) {
	withFields(l.zlog.Fatal().Err(err), fields).Msg(msg)
}

// With creates a child logger carrying additional fields.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	ctx := l.zlog.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{zlog: ctx.Logger()}
}

// WithRequestID creates a child logger with a request_id field.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		zlog: l.zlog.With().Str("request_id", requestID).Logger(),
	}
}

// Level reports the minimum level this logger emits.
func (l *Logger) Level() zerolog.Level {
	return l.zlog.GetLevel()
}

// GetZerolog returns the underlying zerolog.Logger.
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}
