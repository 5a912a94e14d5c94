package actions

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Kind identifies the variant of an Action
type Kind int

const (
	// KindFileInstall copies files matched by a glob into a destination directory
	KindFileInstall Kind = iota
	// KindDirCreate ensures a unit directory exists under a location
	KindDirCreate
)

func (k Kind) String() string {
	switch k {
	case KindFileInstall:
		return "file"
	case KindDirCreate:
		return "dir"
	default:
		return "unknown"
	}
}

// Claimer receives every destination path an action targets
type Claimer interface {
	Claim(path string)
}

// ExecContext carries what an action needs to run. The zero Claims value is
// valid and discards claims.
type ExecContext struct {
	FS          afero.Fs
	DryRun      bool
	SortSources bool
	Claims      Claimer
	Logger      zerolog.Logger
}

func (c ExecContext) claim(path string) {
	if c.Claims != nil {
		c.Claims.Claim(path)
	}
}

// Action is one compiled manifest instruction
type Action interface {
	Kind() Kind
	// Description returns a short human-readable summary
	Description() string
	Execute(ctx ExecContext) Result
}
