// Package logging provides structured logging for zoolist using zerolog.
// Console output is used when stderr is a terminal, JSON otherwise; the
// LOG_LEVEL and LOG_FORMAT environment variables override both.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = newLogger(os.Stderr, levelFromEnv(), formatFromEnv())
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Configure rebuilds the default logger with an explicit level and format.
// Format is "console", "json", or "auto".
func Configure(level, format string) {
	SetDefault(newLogger(os.Stderr, ParseLevel(level), format))
}

// New creates a JSON logger writing to w at the global level.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable console logger on stderr.
func NewConsole() zerolog.Logger {
	return New(consoleWriter())
}

// Debug starts a new debug level log event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Err creates a new error log event with the given error.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

// ParseLevel maps a level string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(level); err == nil {
			return l
		}
		return zerolog.InfoLevel
	}
}

func newLogger(out *os.File, level zerolog.Level, format string) zerolog.Logger {
	zerolog.SetGlobalLevel(level)

	var w io.Writer = out
	if resolveFormat(format, out) == "console" {
		w = consoleWriter()
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

func resolveFormat(format string, out *os.File) string {
	switch strings.ToLower(format) {
	case "console", "pretty":
		return "console"
	case "json":
		return "json"
	default:
		if isTerminal(out) {
			return "console"
		}
		return "json"
	}
}

func levelFromEnv() zerolog.Level {
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") != "" {
		return zerolog.DebugLevel
	}
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

func formatFromEnv() string {
	return os.Getenv("LOG_FORMAT")
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
