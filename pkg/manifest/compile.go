package manifest

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/locations"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	commentPrefix   = "#"
	directivePrefix = "@"
)

// LineError is a compile failure on one manifest line
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Compiler holds what compilation needs besides the manifest text
type Compiler struct {
	// Path names the manifest in errors
	Path string
	// Dir is the manifest's directory; source tokens are relative to it
	Dir string
	// Cwd anchors relative literal destinations
	Cwd string
	// Unit names the directories created by @ lines
	Unit    string
	Resolve locations.Resolver
	FS      afero.Fs
	Logger  zerolog.Logger
}

// Compile parses the manifest line by line and returns the actions in
// line order.
func (c Compiler) Compile(r io.Reader) ([]actions.Action, error) {
	var acts []actions.Action

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		lineActs, err := c.compileLine(text)
		if err != nil {
			lineErr := &LineError{Line: lineNo, Text: strings.TrimSpace(text), Err: err}
			return nil, errors.Wrapf(lineErr, errors.ErrManifestParse, "could not compile %s", c.name()).
				WithDetail("line", lineNo)
		}
		acts = append(acts, lineActs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestRead, "could not read manifest")
	}

	c.Logger.Debug().Int("actions", len(acts)).Int("lines", lineNo).Msg("Manifest compiled")
	return acts, nil
}

func (c Compiler) name() string {
	if c.Path == "" {
		return "manifest"
	}
	return c.Path
}

func (c Compiler) compileLine(text string) ([]actions.Action, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], commentPrefix) {
		return nil, nil
	}

	if strings.HasPrefix(tokens[0], directivePrefix) {
		return c.compileDirs(tokens)
	}

	if len(tokens) < 2 {
		return nil, errors.Newf(errors.ErrManifestParse, "expected a destination after %q", tokens[0])
	}
	if len(tokens) > 3 {
		c.Logger.Warn().Strs("ignored", tokens[3:]).Msg("Extra tokens on manifest line")
	}

	dir, pattern, err := ParseTarget(tokens[0], c.Dir, c.FS)
	if err != nil {
		return nil, err
	}
	dest, err := ParseDest(tokens[1], c.Resolve, c.Cwd, c.FS)
	if err != nil {
		return nil, err
	}
	var optToken string
	if len(tokens) > 2 {
		optToken = tokens[2]
	}
	opts, err := ParseOpts(optToken)
	if err != nil {
		return nil, err
	}

	return []actions.Action{actions.FileInstall{
		SourceDir:     dir,
		SourcePattern: pattern,
		DestDir:       dest,
		Opts:          opts,
	}}, nil
}

// compileDirs handles "@ SHORTCUT..." and also "@SHORTCUT ..." where the
// first shortcut is glued to the marker.
func (c Compiler) compileDirs(tokens []string) ([]actions.Action, error) {
	names := tokens[1:]
	if first := strings.TrimPrefix(tokens[0], directivePrefix); first != "" {
		names = append([]string{first}, names...)
	}

	acts := make([]actions.Action, 0, len(names))
	for _, name := range names {
		var base string
		var ok bool
		if c.Resolve != nil {
			base, ok = c.Resolve(name)
		}
		if !ok {
			return nil, errors.Newf(errors.ErrLocationUnknown, "Could not resolve location %q", name)
		}
		acts = append(acts, actions.DirCreate{DestDir: filepath.Join(base, c.Unit)})
	}
	return acts, nil
}
