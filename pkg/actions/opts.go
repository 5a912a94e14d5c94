package actions

import (
	"os"
	"path/filepath"
	"strings"
)

// Opts is the per-line install policy decoded from an option token
type Opts struct {
	StripExt            bool
	CopyUnderscoreFiles bool
	CopyDotFiles        bool
	Perms               uint32
	Overwrite           bool
	CreatePath          bool
}

// HasPerms reports whether the option token carried permission digits
func (o Opts) HasPerms() bool {
	return o.Perms != 0
}

// FileMode converts the octal permission value into an os.FileMode,
// mapping the setuid, setgid and sticky bits onto their Go equivalents.
func (o Opts) FileMode() os.FileMode {
	mode := os.FileMode(o.Perms & 0o777)
	if o.Perms&0o4000 != 0 {
		mode |= os.ModeSetuid
	}
	if o.Perms&0o2000 != 0 {
		mode |= os.ModeSetgid
	}
	if o.Perms&0o1000 != 0 {
		mode |= os.ModeSticky
	}
	return mode
}

// accepts reports whether a source file name passes the underscore and dot
// filters.
func (o Opts) accepts(name string) bool {
	if strings.HasPrefix(name, "_") && !o.CopyUnderscoreFiles {
		return false
	}
	if strings.HasPrefix(name, ".") && !o.CopyDotFiles {
		return false
	}
	return true
}

// destName returns the installed name for a source file name
func (o Opts) destName(name string) string {
	if !o.StripExt {
		return name
	}
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
