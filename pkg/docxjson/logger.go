package docxjson

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger      *zerolog.Logger
	globalLoggerMutex sync.RWMutex
)

func init() {
	l := NewLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, "info")
	globalLogger = &l
}

// ParseLogLevel maps a configuration level name to a zerolog level. Unknown
// names fall back to info.
func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a timestamped logger writing to w at the given level
func NewLogger(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).Level(ParseLogLevel(level)).With().Timestamp().Logger()
}

// SetLogger replaces the package logger
func SetLogger(logger zerolog.Logger) {
	globalLoggerMutex.Lock()
	defer globalLoggerMutex.Unlock()
	globalLogger = &logger
}

// GetLogger returns the package logger
func GetLogger() *zerolog.Logger {
	globalLoggerMutex.RLock()
	defer globalLoggerMutex.RUnlock()
	return globalLogger
}
