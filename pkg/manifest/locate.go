package manifest

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/filesystem"
	"github.com/spf13/afero"
)

// Extension is the manifest file extension, without the dot
const Extension = "charon"

// Location identifies a manifest on disk
type Location struct {
	Path string
	Dir  string
	Unit string
}

// Locate finds the manifest named by arg. An empty arg means cwd, a
// relative one is taken from cwd. A directory is searched for a single
// *.charon file; when there are several the first in name order wins.
func Locate(fs afero.Fs, arg, cwd string) (Location, error) {
	path := arg
	switch {
	case path == "":
		path = cwd
	case !filepath.IsAbs(path):
		path = filepath.Join(cwd, path)
	}
	path = filepath.Clean(path)

	if !filesystem.Exists(fs, path) {
		return Location{}, errors.Newf(errors.ErrManifestNotFound, "%s does not exist", path)
	}

	if filesystem.IsDir(fs, path) {
		matches, err := afero.Glob(fs, filepath.Join(path, "*."+Extension))
		if err != nil {
			return Location{}, errors.Wrapf(err, errors.ErrManifestRead, "could not search %s for a manifest", path)
		}
		var files []string
		for _, m := range matches {
			if filesystem.IsFile(fs, m) {
				files = append(files, m)
			}
		}
		if len(files) == 0 {
			return Location{}, errors.Newf(errors.ErrManifestNotFound, "could not find .%s file in %s", Extension, path)
		}
		sort.Strings(files)
		path = files[0]
	}

	base := filepath.Base(path)
	return Location{
		Path: path,
		Dir:  filepath.Dir(path),
		Unit: strings.TrimSuffix(base, filepath.Ext(base)),
	}, nil
}

// Read returns the manifest content
func Read(fs afero.Fs, loc Location) ([]byte, error) {
	data, err := afero.ReadFile(fs, loc.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "could not read %s", loc.Path)
	}
	return data, nil
}
