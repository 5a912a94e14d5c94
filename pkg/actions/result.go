package actions

import (
	"fmt"
	"strings"
)

// Status is the outcome for a single destination
type Status int

const (
	StatusDirCreated Status = iota
	StatusDirExists
	StatusDirConflict
	StatusDirFailed
	StatusCopied
	StatusSkippedExists
	StatusCopyFailed
)

// Status texts as they appear on stdout and in the record
const (
	MsgDirExists     = "Did not create: Directory exists."
	MsgDirConflict   = "Did not create: File exists with that name."
	MsgDirCreated    = "Created directory!"
	MsgDirFailed     = "Did not create. Error: %v"
	MsgSkippedExists = "Did not copy: File exists && !overwrite"
	MsgCopyFailed    = "Did not copy. Error: %v"
	MsgCopied        = "Copied! %s\t%o"
	MsgOverwritten   = "File was overwritten."
	MsgDryRun        = "(dry run)"
)

// Failed reports whether the status represents an error
func (s Status) Failed() bool {
	return s == StatusDirFailed || s == StatusCopyFailed
}

func (s Status) String() string {
	switch s {
	case StatusDirCreated:
		return "created"
	case StatusDirExists:
		return "exists"
	case StatusDirConflict:
		return "conflict"
	case StatusDirFailed:
		return "dir-failed"
	case StatusCopied:
		return "copied"
	case StatusSkippedExists:
		return "skipped"
	case StatusCopyFailed:
		return "copy-failed"
	default:
		return "unknown"
	}
}

// Entry describes what happened to one destination path
type Entry struct {
	Dest        string
	Status      Status
	Perms       uint32
	Overwritten bool
	DryRun      bool
	Err         error
}

// Message renders the status line for the entry
func (e Entry) Message() string {
	switch e.Status {
	case StatusDirExists:
		return MsgDirExists
	case StatusDirConflict:
		return MsgDirConflict
	case StatusDirCreated:
		if e.DryRun {
			return MsgDirCreated + " " + MsgDryRun
		}
		return MsgDirCreated
	case StatusDirFailed:
		return fmt.Sprintf(MsgDirFailed, e.Err)
	case StatusSkippedExists:
		return MsgSkippedExists
	case StatusCopyFailed:
		return fmt.Sprintf(MsgCopyFailed, e.Err)
	case StatusCopied:
		var notes []string
		if e.Overwritten {
			notes = append(notes, MsgOverwritten)
		}
		msg := fmt.Sprintf(MsgCopied, strings.Join(notes, " "), e.Perms)
		if e.DryRun {
			msg += " " + MsgDryRun
		}
		return msg
	default:
		return e.Status.String()
	}
}

// Log renders the entry as it is written to the record
func (e Entry) Log() string {
	return strings.ReplaceAll(fmt.Sprintf("%s\n\t# %s\n", e.Dest, e.Message()), `"`, "")
}

// Result is the outcome of executing one action. Err is set only when the
// action as a whole failed; per-file copy failures live in Entries.
type Result struct {
	Action  Action
	Entries []Entry
	Err     error
}

// Log concatenates the entry logs in execution order
func (r Result) Log() string {
	var b strings.Builder
	for _, e := range r.Entries {
		b.WriteString(e.Log())
	}
	return b.String()
}

// Failures returns the entries whose status is an error
func (r Result) Failures() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Status.Failed() {
			out = append(out, e)
		}
	}
	return out
}
