// Package logger provides the shared zerolog instance used across the
// module. Table construction is the only chatty code path; the solver hot
// path never logs.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the shared logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable routes the shared logger to io.Discard.
func Disable() {
	logger = zerolog.New(io.Discard)
}
