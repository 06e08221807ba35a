// Package logging wraps a process-wide zerolog logger.
//
//	logging.Init(cfg.Logging)
//	logging.Info().Str("video_id", id).Msg("published")
//	logging.Ctx(ctx).Warn().Err(err).Msg("event dropped")
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"gotube/internal/config"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Init configures level, format and output. Unknown levels fall back to
// info; an output path that cannot be opened falls back to stdout.
func Init(cfg config.LoggingConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	var openErr error
	switch cfg.OutputPath {
	case "", "stdout":
	case "stderr":
		out = os.Stderr
	default:
		f, ferr := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			openErr = ferr
		} else {
			out = f
		}
	}

	if strings.EqualFold(cfg.Format, "console") || strings.EqualFold(cfg.Format, "text") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	mu.Lock()
	log = zerolog.New(out).Level(level).With().Timestamp().Str("service", "gotube").Logger()
	mu.Unlock()
	return openErr
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Level reports the configured minimum level.
func Level() zerolog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return log.GetLevel()
}

func Debug() *zerolog.Event { l := Logger(); return l.Debug() }
func Info() *zerolog.Event  { l := Logger(); return l.Info() }
func Warn() *zerolog.Event  { l := Logger(); return l.Warn() }
func Error() *zerolog.Event { l := Logger(); return l.Error() }
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

// Ctx returns the request-scoped logger stored by Middleware, or the
// global logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	l := Logger()
	return &l
}
