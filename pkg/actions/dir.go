package actions

import (
	"fmt"

	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/filesystem"
)

// DirCreate ensures DestDir exists as a directory
type DirCreate struct {
	DestDir string
}

var _ Action = DirCreate{}

func (a DirCreate) Kind() Kind { return KindDirCreate }

func (a DirCreate) Description() string {
	return fmt.Sprintf("create directory %s", a.DestDir)
}

// Execute checks the destination at run time. The directory is claimed
// whatever the outcome.
func (a DirCreate) Execute(ctx ExecContext) Result {
	ctx.claim(a.DestDir)

	res := Result{Action: a}
	entry := Entry{Dest: a.DestDir, DryRun: ctx.DryRun}

	switch {
	case filesystem.IsDir(ctx.FS, a.DestDir):
		entry.Status = StatusDirExists
	case filesystem.Exists(ctx.FS, a.DestDir):
		entry.Status = StatusDirConflict
	case ctx.DryRun:
		entry.Status = StatusDirCreated
	default:
		if err := ctx.FS.Mkdir(a.DestDir, filesystem.DefaultDirMode); err != nil {
			entry.Status = StatusDirFailed
			entry.Err = err
			res.Err = errors.Wrapf(err, errors.ErrDirCreate, "could not create directory %s", a.DestDir)
		} else {
			entry.Status = StatusDirCreated
		}
	}

	ctx.Logger.Debug().Str("dest", a.DestDir).Stringer("status", entry.Status).Msg("Directory action")
	res.Entries = append(res.Entries, entry)
	return res
}
