// Package clog wraps github.com/rs/zerolog the way gnark's own
// internal logger package does: a single global logger, set up at
// package initialization, reconfigurable by an embedding application, disabled by
// default at a verbosity a library shouldn't impose on its caller.
package clog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		With().Timestamp().Logger().
		Level(zerolog.Disabled)
)

// Logger returns the shared logger. Callers that embed Cloak in a
// larger service typically call SetOutput/SetLevel once at startup and
// then use Logger() from gadget-adjacent code that wants to log.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// SetOutput redirects the global logger to w, preserving its level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

// SetLevel adjusts the global logger's verbosity.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(level)
}

// Disable silences the logger entirely, the default state.
func Disable() {
	SetLevel(zerolog.Disabled)
}
