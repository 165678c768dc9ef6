package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/batch"
	"github.com/skelly-dev/javadoclink/internal/config"
	"github.com/skelly-dev/javadoclink/internal/errors"
	"github.com/skelly-dev/javadoclink/internal/logging"
	"github.com/skelly-dev/javadoclink/internal/output"
)

type appKey struct{}

// app is the per-invocation state shared by all commands.
type app struct {
	cfg    *config.Config
	format output.Format
}

func loadApp(cmd *cobra.Command, _ []string) error {
	configFile, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return err
	}
	wd, err := resolveWorkingDirectory()
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "cannot start")
	}

	cfg, err := config.Load(config.Options{File: configFile, Dir: wd, Flags: cmd.Flags()})
	if err != nil {
		return errors.ConfigError(err)
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid --output")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if cfg.File != "" {
		logger.Debug().Str("file", cfg.File).Msg("loaded config")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	ctx = context.WithValue(ctx, appKey{}, &app{cfg: cfg, format: format})
	cmd.SetContext(ctx)
	return nil
}

func appFrom(cmd *cobra.Command) *app {
	if ctx := cmd.Context(); ctx != nil {
		if a, ok := ctx.Value(appKey{}).(*app); ok {
			return a
		}
	}
	return &app{cfg: &config.Config{Version: config.DefaultVersion, Module: config.DefaultModule}}
}

func (a *app) evaluator() batch.Evaluator {
	return batch.Evaluator{
		Version: a.cfg.Version,
		Module:  a.cfg.Module,
		BaseURL: a.cfg.BaseURLFor,
	}
}

// write renders data in the selected output format.
func (a *app) write(w io.Writer, data any) error {
	format := output.DetectFormat(a.format, w)
	return output.NewFormatter(format).Format(w, data)
}
