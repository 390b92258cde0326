package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/config"
	"github.com/abhisek/designlab/internal/learner"
	"github.com/abhisek/designlab/internal/logging"
	"github.com/abhisek/designlab/internal/progress"
	"github.com/abhisek/designlab/internal/store"
)

// cmdEnv is everything a command needs to act on one learner's progress.
type cmdEnv struct {
	cfg    config.Config
	logger *logging.Logger
	store  *store.Store
	sess   *learner.Session
}

// openEnv resolves configuration, opens the store and restores the learner's
// session. console selects whether logs are also written to stderr.
func openEnv(cmd *cobra.Command, console bool) (*cmdEnv, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{Level: cfg.LogLevel, File: cfg.LogFile}
	if console {
		logOpts.Console = cmd.ErrOrStderr()
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		logger.Close()
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	ctx := commandContext(cmd)
	sess, err := learner.Open(ctx, cat, st.EventRepo(), st.SnapshotRepo(), cfg.LearnerID, logger.Logger)
	if err != nil {
		st.Close()
		logger.Close()
		return nil, err
	}
	logger.Debug("session opened", "learner", cfg.LearnerID, "session", sess.ID, "db", dbPath, "catalog", cat.Version())

	return &cmdEnv{cfg: cfg, logger: logger, store: st, sess: sess}, nil
}

// withEnv runs fn against a freshly opened cmdEnv and closes it afterwards.
// A failure to save the session on close is returned when fn succeeded.
func withEnv(cmd *cobra.Command, console bool, fn func(*cmdEnv) error) (err error) {
	e, err := openEnv(cmd, console)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(commandContext(cmd)); cerr != nil && err == nil {
			err = fmt.Errorf("save progress: %w", cerr)
		}
	}()
	return fn(e)
}

// Close checkpoints the session if it changed and releases the store and log
// file.
func (e *cmdEnv) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := e.sess.Close(ctx)
	if cerr := e.store.Close(); err == nil {
		err = cerr
	}
	e.logger.Close()
	return err
}

// resolveConfig layers command-line flags over config.Load.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, "")
	if err != nil {
		return config.Config{}, err
	}

	for name, dst := range map[string]*string{
		"db":        &cfg.DBPath,
		"learner":   &cfg.LearnerID,
		"catalog":   &cfg.CatalogPath,
		"log-level": &cfg.LogLevel,
		"log-file":  &cfg.LogFile,
	} {
		if v, _ := flags.GetString(name); v != "" {
			*dst = v
		}
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// guidedError reports an engine error with learner-facing guidance while
// keeping the original error for errors.Is.
type guidedError struct {
	err error
}

func (g *guidedError) Error() string { return progress.Guidance(g.err) }
func (g *guidedError) Unwrap() error { return g.err }

func guide(err error) error {
	var te *progress.TransitionError
	if errors.As(err, &te) {
		return &guidedError{err: err}
	}
	return err
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
