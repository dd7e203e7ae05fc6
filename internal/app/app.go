// Package app wires the application together: configuration, logging,
// graph loading and evaluation.
package app

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/vk/nodeflowgo/internal/catalog"
	"github.com/vk/nodeflowgo/internal/eval"
	"github.com/vk/nodeflowgo/internal/graphfile"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	errW      io.Writer
	logger    *slog.Logger
	fs        afero.Fs
	catalog   *catalog.Catalog
	loader    *graphfile.Loader
	evaluator *eval.Evaluator
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, reading
// through the operating system's filesystem.
func New(outW, errW io.Writer, cfg *Config) *App {
	return NewWithFs(outW, errW, cfg, afero.NewOsFs())
}

// NewWithFs is New with a caller-supplied filesystem, used by tests to
// run against an in-memory one.
func NewWithFs(outW, errW io.Writer, cfg *Config, fsys afero.Fs) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	cat := catalog.Default()
	return &App{
		outW:      outW,
		errW:      errW,
		logger:    logger,
		fs:        fsys,
		catalog:   cat,
		loader:    graphfile.NewLoader(fsys, cat),
		evaluator: eval.New(fsys),
	}
}
