// Package logger provides the oracle's structured logger, a thin wrapper
// around zerolog in the style of github.com/consensys/gnark/logger.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

func init() {
	if filter, ok := os.LookupEnv("LOG_FILTER"); ok {
		if lvl, err := zerolog.ParseLevel(filter); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	}
}

// Logger returns the package-level logger. Call .With()...Logger() on the
// result to attach request-scoped fields without mutating the global.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetOutput redirects the global logger, e.g. for tests that want to
// capture or silence output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

// Disable silences the global logger entirely.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.Nop()
}
