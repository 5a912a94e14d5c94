package manifest

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/filesystem"
	"github.com/arthur-debert/charon/pkg/locations"
	"github.com/spf13/afero"
)

// ParseDest resolves a destination token. The part before the first slash
// is tried as a location shortcut; only when it is not one is the whole
// token taken as a literal path, which must already exist. A relative
// literal is joined onto cwd, or the process directory when cwd is empty.
func ParseDest(token string, resolve locations.Resolver, cwd string, fs afero.Fs) (string, error) {
	head, rest, _ := strings.Cut(token, "/")
	if resolve != nil {
		if base, ok := resolve(head); ok {
			return filepath.Join(base, rest), nil
		}
	}

	path, err := literalPath(token, cwd)
	if err == nil && filesystem.Exists(fs, path) {
		return path, nil
	}
	return "", errors.Newf(errors.ErrDestUnresolved, "Could not parse destination %q", token).
		WithDetail("token", token)
}

func literalPath(token, cwd string) (string, error) {
	if filepath.IsAbs(token) || cwd == "" {
		return filepath.Abs(token)
	}
	return filepath.Join(cwd, token), nil
}

// ParseTarget splits a source token on its last slash into a directory,
// joined onto manifestDir unless absolute, and a file name or glob. The
// directory must exist, and so must a plain file name. Only '*' makes the
// name a glob; an empty name means the whole directory.
func ParseTarget(token, manifestDir string, fs afero.Fs) (string, string, error) {
	root, name := "", token
	if i := strings.LastIndex(token, "/"); i >= 0 {
		root, name = token[:i], token[i+1:]
		if root == "" {
			root = "/"
		}
	}

	dir := root
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(manifestDir, root)
	}
	dir = filepath.Clean(dir)

	if !filesystem.IsDir(fs, dir) {
		return "", "", errors.Newf(errors.ErrTargetNotFound, "%s could not be found", dir).
			WithDetail("token", token)
	}

	if name == "" {
		return dir, actions.Wildcard, nil
	}
	if actions.IsPattern(name) {
		if _, err := filepath.Match(name, ""); err != nil {
			return "", "", errors.Wrapf(err, errors.ErrInvalidInput, "bad pattern %q", name)
		}
		return dir, name, nil
	}
	if path := filepath.Join(dir, name); !filesystem.Exists(fs, path) {
		return "", "", errors.Newf(errors.ErrTargetNotFound, "%s could not be found", path).
			WithDetail("token", token)
	}
	return dir, name, nil
}
