package actions

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/filesystem"
	"github.com/spf13/afero"
)

// Wildcard is the only glob metacharacter recognised in a source name
const Wildcard = "*"

// FileInstall copies every file matching SourceDir/SourcePattern into DestDir
type FileInstall struct {
	SourceDir     string
	SourcePattern string
	DestDir       string
	Opts          Opts
}

var _ Action = FileInstall{}

func (a FileInstall) Kind() Kind { return KindFileInstall }

func (a FileInstall) Description() string {
	return fmt.Sprintf("install %s into %s", filepath.Join(a.SourceDir, a.pattern()), a.DestDir)
}

func (a FileInstall) pattern() string {
	if a.SourcePattern == "" {
		return Wildcard
	}
	return a.SourcePattern
}

// IsPattern reports whether a source name is expanded as a glob. Only '*'
// makes a pattern, so names such as "file[1].txt" stay literal.
func IsPattern(name string) bool {
	return name == "" || strings.Contains(name, Wildcard)
}

// Sources expands the glob and applies the underscore and dot filters
func (a FileInstall) Sources(fs afero.Fs, sorted bool) ([]string, error) {
	var matches []string
	if IsPattern(a.SourcePattern) {
		var err error
		matches, err = afero.Glob(fs, filepath.Join(a.SourceDir, a.pattern()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "bad source pattern %q", a.pattern())
		}
	} else if path := filepath.Join(a.SourceDir, a.SourcePattern); filesystem.Exists(fs, path) {
		matches = []string{path}
	}
	if sorted {
		sort.Strings(matches)
	}

	sources := make([]string, 0, len(matches))
	for _, m := range matches {
		if !a.Opts.accepts(filepath.Base(m)) {
			continue
		}
		sources = append(sources, m)
	}
	return sources, nil
}

// Destination returns where a source file ends up
func (a FileInstall) Destination(source string) string {
	return filepath.Join(a.DestDir, a.Opts.destName(filepath.Base(source)))
}

// Execute installs each source in turn. A failed copy is recorded on its
// entry and the remaining sources still run.
func (a FileInstall) Execute(ctx ExecContext) Result {
	res := Result{Action: a}
	logger := ctx.Logger.With().Str("dest_dir", a.DestDir).Logger()

	sources, err := a.Sources(ctx.FS, ctx.SortSources)
	if err != nil {
		res.Err = err
		return res
	}
	if len(sources) == 0 {
		logger.Debug().Str("pattern", filepath.Join(a.SourceDir, a.pattern())).Msg("No sources matched")
		return res
	}

	if a.Opts.CreatePath && !ctx.DryRun && !filesystem.IsDir(ctx.FS, a.DestDir) {
		if err := ctx.FS.MkdirAll(a.DestDir, filesystem.DefaultDirMode); err != nil {
			logger.Error().Err(err).Msg("Could not create destination path")
		} else {
			logger.Info().Msg("Created destination path")
		}
	}

	for _, src := range sources {
		dest := a.Destination(src)
		ctx.claim(dest)

		entry := Entry{Dest: dest, Perms: a.Opts.Perms, DryRun: ctx.DryRun}
		if filesystem.Exists(ctx.FS, dest) {
			if !a.Opts.Overwrite {
				entry.Status = StatusSkippedExists
				logger.Debug().Str("dest", dest).Msg("Destination exists, not overwriting")
				res.Entries = append(res.Entries, entry)
				continue
			}
			entry.Overwritten = true
		}

		if !ctx.DryRun {
			if err := a.install(ctx.FS, src, dest); err != nil {
				entry.Status = StatusCopyFailed
				entry.Err = err
				logger.Error().Err(err).Str("source", src).Str("dest", dest).Msg("Copy failed")
				res.Entries = append(res.Entries, entry)
				continue
			}
		}

		entry.Status = StatusCopied
		logger.Debug().Str("source", src).Str("dest", dest).Bool("dry_run", ctx.DryRun).Msg("Installed")
		res.Entries = append(res.Entries, entry)
	}
	return res
}

func (a FileInstall) install(fs afero.Fs, src, dest string) error {
	if err := filesystem.CopyFile(fs, src, dest); err != nil {
		return err
	}
	if a.Opts.HasPerms() {
		if err := fs.Chmod(dest, a.Opts.FileMode()); err != nil {
			return err
		}
	}
	return nil
}
