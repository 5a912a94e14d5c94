package record

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Failure is an orphan that could not be removed
type Failure struct {
	Path string
	Err  error
}

// Removal is the outcome of deleting orphans
type Removal struct {
	Removed []string
	Failed  []Failure
	// Skipped holds relative paths, which are never deleted
	Skipped []string
}

// RemoveOrphans deletes each path in turn. Failures are logged and the
// remaining paths are still attempted. Successful removals are echoed to out
// when it is not nil.
func RemoveOrphans(fs afero.Fs, paths []string, logger zerolog.Logger, out io.Writer) Removal {
	var res Removal
	for _, path := range paths {
		if !filepath.IsAbs(path) {
			logger.Warn().Str("path", path).Msg("Not removing relative orphan path")
			res.Skipped = append(res.Skipped, path)
			continue
		}
		if err := fs.Remove(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Could not remove orphan")
			res.Failed = append(res.Failed, Failure{Path: path, Err: err})
			continue
		}
		logger.Info().Str("path", path).Msg("Removed orphan")
		res.Removed = append(res.Removed, path)
		if out != nil {
			fmt.Fprintf(out, "Removed orphan %s\n", path)
		}
	}
	return res
}
