package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/charon/pkg/errors"
)

// Entry is one recorded destination with the status comment that followed it
type Entry struct {
	Path   string `yaml:"path"`
	Status string `yaml:"status,omitempty"`
}

// LineWarning reports a record line that was skipped
type LineWarning struct {
	Line   int
	Text   string
	Tokens int
}

func (w LineWarning) String() string {
	return fmt.Sprintf("line %d: expected 1 to 3 fields, found %d", w.Line, w.Tokens)
}

// Parse reads destination paths from a record. Comment and blank lines are
// skipped. A line with one token is that path; with two or three tokens the
// second is the path; any other line is skipped and reported.
func Parse(r io.Reader) ([]string, []LineWarning, error) {
	entries, warnings, err := ParseEntries(r)
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths, warnings, err
}

// ParseEntries is Parse keeping, for each path, the first "# status" line
// written after it.
func ParseEntries(r io.Reader) ([]Entry, []LineWarning, error) {
	var entries []Entry
	var warnings []LineWarning

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if n := len(entries); n > 0 && entries[n-1].Status == "" {
				entries[n-1].Status = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			}
			continue
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			entries = append(entries, Entry{Path: fields[0]})
		case 2, 3:
			entries = append(entries, Entry{Path: fields[1]})
		default:
			warnings = append(warnings, LineWarning{Line: lineNo, Text: line, Tokens: len(fields)})
		}
	}
	if err := scanner.Err(); err != nil {
		return entries, warnings, errors.Wrap(err, errors.ErrRecordRead, "could not read record")
	}
	return entries, warnings, nil
}

// ReadEntries parses the unit's record file directly, without the dry-run
// fallback Load applies.
func (s *Store) ReadEntries(unit string, dryRun bool) ([]Entry, error) {
	path := s.Path(unit, dryRun)
	f, err := s.FS.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecordRead, "could not open %s", path)
	}
	defer f.Close()
	entries, _, err := ParseEntries(f)
	return entries, err
}
