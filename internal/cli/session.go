package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/trendlab/internal/config"
	"github.com/roach88/trendlab/internal/pipeline"
	"github.com/roach88/trendlab/internal/store"
)

// session holds what one command invocation needs: resolved settings, an
// open store, the pipeline over it, and the output formatter.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	store    *store.Store
	pipeline *pipeline.Pipeline
	out      *OutputFormatter
}

// openSession resolves configuration, configures logging, and opens the store.
// The caller must Close the session.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}

	logLevel, _ := cfg.Level()
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	logger.Debug("opening database", "path", cfg.Database)
	st, err := store.Open(cfg.Database, store.WithLogger(logger))
	if err != nil {
		return nil, out.fail(err)
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		pipeline: pipeline.New(st, pipeline.WithLogger(logger)),
		out:      out,
	}, nil
}

// Close releases the store.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing database", "error", err)
	}
}
