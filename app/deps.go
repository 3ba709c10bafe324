package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/config"
	"github.com/ayoisaiah/ppm/internal/editor"
	"github.com/ayoisaiah/ppm/internal/logging"
	"github.com/ayoisaiah/ppm/internal/output"
	"github.com/ayoisaiah/ppm/internal/pathutil"
	"github.com/ayoisaiah/ppm/store"
)

// deps holds everything a command needs. It is assembled once per
// invocation and released with close.
type deps struct {
	cfg      *config.Config
	clock    clock.Clock
	out      output.Writer
	editor   editor.System
	sessions store.SessionRepository
	notes    store.NoteRepository
	tasks    store.TaskRepository
	projects store.ProjectRepository
	closers  []io.Closer
}

// loadConfig reads the config file, environment and flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithDataDir(pathutil.DataDir()),
	)
}

// newDeps loads the configuration and opens the configured repositories.
func newDeps(ctx *cli.Context) (*deps, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	d := &deps{
		cfg:    cfg,
		clock:  clock.System{},
		out:    output.NewConsole(config.Stdout, cfg.Output.Prefix),
		editor: editor.System{Command: cfg.Editor},
	}

	logFile, err := logging.Setup(pathutil.LogFilePath(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	d.closers = append(d.closers, logFile)

	fs := afero.NewOsFs()

	switch cfg.Storage.Backend {
	case config.BackendBolt:
		boltStore, err := store.NewBoltSessionStore(cfg.Storage.Bolt)
		if err != nil {
			_ = d.close()
			return nil, err
		}

		d.sessions = boltStore
		d.closers = append(d.closers, boltStore)
	default:
		d.sessions = store.NewJSONSessionStore(fs, cfg.Storage.Sessions)
	}

	d.notes = store.NewMarkdownNoteStore(fs, cfg.Storage.NotesDir)
	d.tasks = store.NewJSONTaskStore(fs, cfg.Storage.Tasks)
	d.projects = store.NewJSONProjectStore(fs, cfg.Storage.Projects)

	slog.Debug(
		"dependencies ready",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("config", cfg.PathToConfig),
	)

	return d, nil
}

// close releases resources in reverse order of acquisition.
func (d *deps) close() error {
	var errs []error

	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	d.closers = nil

	return errors.Join(errs...)
}
