// Package log configures the zerolog logger shared by the CLI.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured or the level is invalid.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for configuring the base logger.
type Config struct {
	Level  string    // "debug", "info", ...; empty means DefaultLevel
	Output io.Writer // defaults to os.Stderr
}

var (
	mu   sync.Mutex
	base = zerolog.New(os.Stderr).Level(DefaultLevel)
)

// Configure replaces the base logger. Unlike a long-running service the CLI
// learns its level from flags after start-up, so this may be called again.
func Configure(cfg Config) zerolog.Logger {
	level := DefaultLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()

	mu.Lock()
	base = l
	mu.Unlock()
	return l
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
