// Package app wires configuration, traversal and output together.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/dir-struct/internal/config"
	"github.com/bethropolis/dir-struct/internal/logger"
	"github.com/bethropolis/dir-struct/internal/printer"
	"github.com/bethropolis/dir-struct/internal/setup"
	"github.com/bethropolis/dir-struct/internal/summary"
	"github.com/bethropolis/dir-struct/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
	Stderr io.Writer

	outFile *os.File
}

// New creates an App writing the tree to stdout, or to cfg.OutputFile when
// set. Call Close when done.
func New(cfg *config.Config) (*App, error) {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	a := &App{
		cfg:    cfg,
		Output: os.Stdout,
		Stderr: os.Stderr,
	}

	if cfg.OutputFile != "" {
		// Reject bad configs before truncating an existing file.
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		a.outFile = file
		a.Output = file
	}

	a.log = newLogger(cfg, a.Stderr)
	return a, nil
}

func newLogger(cfg *config.Config, out io.Writer) *logger.Logger {
	log := logger.New(out, cfg.Verbose, cfg.UseColors)
	if !cfg.Verbose && cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	}
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}
	return log
}

// SetStderr redirects diagnostics, including the logger.
func (a *App) SetStderr(w io.Writer) {
	a.Stderr = w
	a.log = newLogger(a.cfg, w)
}

// Close releases the output file, if one was opened.
func (a *App) Close() error {
	if a.outFile == nil {
		return nil
	}
	err := a.outFile.Close()
	a.outFile = nil
	return err
}

// Run executes the main application logic
func (a *App) Run() error {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Fprintf(a.Output, "dir-struct version %s\n", a.cfg.Version)
		return nil
	}

	if err := a.cfg.Validate(); err != nil {
		a.log.Error("%v", err)
		return err
	}

	if a.log.Verbose() {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Directory: %s", a.cfg.RootDir)
		a.log.Debug("Format: %s", a.cfg.Format)
	}

	// A missing root is reported by the walker; a non-directory is not.
	if info, err := os.Stat(a.cfg.RootDir); err == nil && !info.IsDir() {
		err := fmt.Errorf("specified path '%s' is not a directory", a.cfg.RootDir)
		a.log.Error("%v", err)
		return err
	}

	walkOptions, tracker := setup.ConfigureWalker(a.cfg, a.log, a.log.Info)

	a.log.Info("Scanning directory: %s", a.cfg.RootDir)
	root, err := a.generate(walkOptions)
	if err != nil {
		a.log.Error("Could not build structure: %v", err)
		return err
	}

	p := printer.New().
		WithOutput(a.Output).
		WithFormat(a.cfg.Format).
		WithColors(a.cfg.UseColors && a.cfg.Format == config.FormatTree).
		WithRedactedNames(a.cfg.RedactedDirName, a.cfg.RedactedFileName)
	if err := p.Print(root); err != nil {
		a.log.Error("%v", err)
		return err
	}
	a.log.Debug("Printed %d entries", p.GetCount())

	if a.cfg.ShowSummary {
		summary.DisplayResults(a.log, summary.Collect(root), time.Since(startTime), a.cfg.Quiet)
	}
	if tracker != nil {
		summary.DisplaySkippedItems(a.log, tracker.Items(), a.Stderr, a.cfg.Quiet)
	}
	return nil
}

// generate runs the walk, bounded by cfg.Timeout when one is set. The walk
// itself is not cancellable; on timeout its result is abandoned.
func (a *App) generate(opts []walker.Option) (*walker.Entry, error) {
	if a.cfg.Timeout <= 0 {
		return walker.Generate(a.cfg.RootDir, opts...)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeout)
	defer cancel()

	type result struct {
		root *walker.Entry
		err  error
	}
	done := make(chan result, 1)
	go func() {
		root, err := walker.Generate(a.cfg.RootDir, opts...)
		done <- result{root, err}
	}()

	select {
	case r := <-done:
		return r.root, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("timeout of %v reached: %w", a.cfg.Timeout, ctx.Err())
	}
}
