package record

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/filesystem"
	"github.com/spf13/afero"
)

// Default record file extensions
const (
	DefaultExt       = "charon"
	DefaultDryRunExt = "dryrun.charon"
)

// Store locates record files for units inside Dir
type Store struct {
	FS        afero.Fs
	Dir       string
	Ext       string
	DryRunExt string
}

// NewStore returns a Store using the default extensions
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{FS: fs, Dir: dir, Ext: DefaultExt, DryRunExt: DefaultDryRunExt}
}

// Path returns the record file for unit
func (s *Store) Path(unit string, dryRun bool) string {
	ext := s.Ext
	if dryRun {
		ext = s.DryRunExt
	}
	return filepath.Join(s.Dir, unit+"."+ext)
}

// Loaded is the outcome of reading a unit's previous record
type Loaded struct {
	// Source is the file read, empty when no record exists
	Source   string
	Paths    []string
	Warnings []LineWarning
}

// Load reads the unit's real record, falling back to the dry-run record.
// A unit with neither has an empty record.
func (s *Store) Load(unit string) (Loaded, error) {
	for _, dryRun := range []bool{false, true} {
		path := s.Path(unit, dryRun)
		f, err := s.FS.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Loaded{}, errors.Wrapf(err, errors.ErrRecordRead, "could not open %s", path)
		}
		paths, warnings, err := Parse(f)
		_ = f.Close()
		return Loaded{Source: path, Paths: paths, Warnings: warnings}, err
	}
	return Loaded{}, nil
}

// Create truncates or creates the unit's record for writing
func (s *Store) Create(unit string, dryRun bool) (io.WriteCloser, error) {
	if err := s.FS.MkdirAll(s.Dir, filesystem.DefaultDirMode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecordWrite, "could not create record directory %s", s.Dir)
	}
	path := s.Path(unit, dryRun)
	f, err := s.FS.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filesystem.DefaultFileMode)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecordWrite, "could not open %s for writing", path)
	}
	return f, nil
}

// Units lists the units that have a real record, in name order
func (s *Store) Units() ([]string, error) {
	matches, err := afero.Glob(s.FS, filepath.Join(s.Dir, "*."+s.Ext))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRecordRead, "could not list records")
	}
	var units []string
	for _, m := range matches {
		base := filepath.Base(m)
		if strings.HasSuffix(base, "."+s.DryRunExt) {
			continue
		}
		units = append(units, strings.TrimSuffix(base, "."+s.Ext))
	}
	return units, nil
}
