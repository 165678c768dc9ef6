// Package logging configures the zerolog logger used by the CLI.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger options.
type Config struct {
	// Level is one of trace, debug, info, warn, error or disabled.
	Level string

	// Format is auto, console or json. Auto picks console on terminals.
	Format string

	// Output receives log lines; defaults to os.Stderr.
	Output io.Writer

	NoColor bool
}

// New builds a logger from cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(cfg.Level)
	writer := out
	if useConsole(cfg.Format, out) {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor || os.Getenv("NO_COLOR") != "",
		}
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func useConsole(format string, out io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "pretty", "text":
		return true
	case "json":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel maps a level name to a zerolog level; unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
		return zerolog.InfoLevel
	}
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return zerolog.Ctx(ctx)
}
