package core

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/executor"
	"github.com/arthur-debert/charon/pkg/filesystem"
	"github.com/arthur-debert/charon/pkg/locations"
	"github.com/arthur-debert/charon/pkg/logging"
	"github.com/arthur-debert/charon/pkg/manifest"
	"github.com/arthur-debert/charon/pkg/record"
	"github.com/spf13/afero"
)

// InstallOptions contains options for an install run
type InstallOptions struct {
	FS afero.Fs
	// ManifestPath is a manifest file or a directory holding one; relative
	// paths are taken from Cwd
	ManifestPath string
	Cwd          string

	DryRun        bool
	RemoveOrphans bool
	Quiet         bool
	SortSources   bool

	Resolve locations.Resolver
	Store   *record.Store

	Renderer executor.Renderer
	Out      io.Writer
	Errors   io.Writer
}

// InstallResult describes a finished run
type InstallResult struct {
	Manifest   manifest.Location
	RecordPath string
	// Previous is the record the orphans were computed from
	Previous record.Loaded
	Summary  *executor.Summary
	Orphans  []string
	Removal  *record.Removal
}

// Install runs one manifest end to end
func Install(opts InstallOptions) (*InstallResult, error) {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if opts.Store == nil {
		return nil, errors.New(errors.ErrInternal, "install needs a record store")
	}
	logger := logging.GetLogger("core.install")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	loc, err := manifest.Locate(fs, opts.ManifestPath, opts.Cwd)
	if err != nil {
		return nil, err
	}
	logger = logging.ForUnit(logger, loc.Unit)
	logger.Info().Str("manifest", loc.Path).Bool("dry_run", opts.DryRun).Msg("Installing unit")

	content, err := manifest.Read(fs, loc)
	if err != nil {
		return nil, err
	}
	compiler := manifest.Compiler{
		Path:    loc.Path,
		Dir:     loc.Dir,
		Cwd:     opts.Cwd,
		Unit:    loc.Unit,
		Resolve: opts.Resolve,
		FS:      fs,
		Logger:  logger,
	}
	acts, err := compiler.Compile(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	previous, err := opts.Store.Load(loc.Unit)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load previous record, treating it as empty")
		previous = record.Loaded{}
	}
	for _, w := range previous.Warnings {
		logger.Warn().Str("record", previous.Source).Int("line", w.Line).Msg(w.String())
	}
	orphans := record.NewOrphanSet(previous.Paths)

	result := &InstallResult{
		Manifest:   loc,
		RecordPath: opts.Store.Path(loc.Unit, opts.DryRun),
		Previous:   previous,
	}

	file, err := opts.Store.Create(loc.Unit, opts.DryRun)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(file)

	ctx := actions.ExecContext{
		FS:          fs,
		DryRun:      opts.DryRun,
		SortSources: opts.SortSources,
		Claims:      orphans,
		Logger:      logger,
	}
	summary, runErr := executor.Run(ctx, acts, executor.Options{
		Record:   buf,
		Out:      opts.Out,
		Errors:   opts.Errors,
		Quiet:    opts.Quiet,
		Renderer: opts.Renderer,
		Logger:   logger,
	})
	result.Summary = summary

	if err := buf.Flush(); err != nil && runErr == nil {
		runErr = errors.Wrap(err, errors.ErrRecordWrite, "could not write record")
	}
	if err := file.Close(); err != nil && runErr == nil {
		runErr = errors.Wrap(err, errors.ErrRecordWrite, "could not close record")
	}
	if runErr != nil {
		return result, runErr
	}

	result.Orphans = orphans.Remaining()
	if opts.DryRun || !opts.RemoveOrphans {
		logger.Debug().Int("orphans", len(result.Orphans)).Msg("Leaving orphans in place")
		return result, nil
	}

	var echo io.Writer
	if !opts.Quiet {
		echo = opts.Out
	}
	removal := record.RemoveOrphans(fs, result.Orphans, logger, echo)
	result.Removal = &removal
	if opts.Errors != nil {
		for _, f := range removal.Failed {
			fmt.Fprintf(opts.Errors, "Error: could not remove orphan %s: %v\n", f.Path, f.Err)
		}
	}
	return result, nil
}
