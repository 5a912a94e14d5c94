package locations

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/charon/pkg/config"
	"github.com/arthur-debert/charon/pkg/errors"
)

// Name identifies one installation location
type Name string

// Installation locations
const (
	Alias       Name = "alias"
	Bin         Name = "bin"
	Config      Name = "config"
	Data        Name = "data"
	Lib         Name = "lib"
	LocalConfig Name = "local_config"
	LocalData   Name = "local_data"
	Home        Name = "home"
)

// Environment variables overriding the configured base paths
const (
	EnvAliasDir       = "MYTHOS_ALIAS_DIR"
	EnvBinDir         = "MYTHOS_BIN_DIR"
	EnvConfigDir      = "MYTHOS_CONFIG_DIR"
	EnvDataDir        = "MYTHOS_DATA_DIR"
	EnvLibDir         = "MYTHOS_LIB_DIR"
	EnvLocalConfigDir = "MYTHOS_LOCAL_CONFIG_DIR"
	EnvLocalDataDir   = "MYTHOS_LOCAL_DATA_DIR"
	EnvHome           = "HOME"
)

// Location is one resolved entry of the shortcut table
type Location struct {
	Name      Name
	Shortcuts []string
	EnvVar    string
	Path      string
}

// Resolver maps a shortcut to a base directory. The bool is false when the
// name is not a shortcut.
type Resolver func(shortcut string) (string, bool)

// Table is the resolved shortcut table
type Table struct {
	locations []Location
	byName    map[Name]int
	shortcuts map[string]Name
}

type definition struct {
	name      Name
	shortcuts []string
	envVar    string
	base      func(config.Locations) string
}

var definitions = []definition{
	{Alias, []string{"A", "ALIAS"}, EnvAliasDir, func(l config.Locations) string { return l.Alias }},
	{Bin, []string{"B", "BIN"}, EnvBinDir, func(l config.Locations) string { return l.Bin }},
	{Config, []string{"C", "CONFIG"}, EnvConfigDir, func(l config.Locations) string { return l.Config }},
	{Data, []string{"D", "DATA"}, EnvDataDir, func(l config.Locations) string { return l.Data }},
	{Lib, []string{"LB", "LIB"}, EnvLibDir, func(l config.Locations) string { return l.Lib }},
	{LocalConfig, []string{"LC", "LCONFIG", "LOCALCONFIG"}, EnvLocalConfigDir, func(l config.Locations) string { return l.LocalConfig }},
	{LocalData, []string{"LD", "LDATA", "LOCALDATA"}, EnvLocalDataDir, func(l config.Locations) string { return l.LocalData }},
}

// New resolves every location from cfg and the environment
func New(cfg config.Locations) (*Table, error) {
	home := homeDir()

	t := &Table{
		byName:    make(map[Name]int),
		shortcuts: make(map[string]Name),
	}

	for _, def := range definitions {
		raw := def.base(cfg)
		if v := os.Getenv(def.envVar); v != "" {
			raw = v
		}
		if raw == "" {
			return nil, errors.Newf(errors.ErrLocationUnknown, "no path configured for location %s", def.name).
				WithDetail("env", def.envVar)
		}
		path, err := absolute(expandHome(raw, home))
		if err != nil {
			return nil, err
		}
		t.add(Location{Name: def.name, Shortcuts: def.shortcuts, EnvVar: def.envVar, Path: path})
	}

	t.add(Location{Name: Home, Shortcuts: []string{"HOME", "~"}, EnvVar: EnvHome, Path: home})
	return t, nil
}

func (t *Table) add(loc Location) {
	t.byName[loc.Name] = len(t.locations)
	t.locations = append(t.locations, loc)
	for _, s := range loc.Shortcuts {
		t.shortcuts[s] = loc.Name
	}
}

// Resolve returns the base directory of a shortcut such as "$C" or "BIN"
func (t *Table) Resolve(shortcut string) (string, bool) {
	name, ok := t.shortcuts[strings.TrimPrefix(shortcut, "$")]
	if !ok {
		return "", false
	}
	return t.locations[t.byName[name]].Path, true
}

// Path returns the base directory of a named location
func (t *Table) Path(name Name) string {
	i, ok := t.byName[name]
	if !ok {
		return ""
	}
	return t.locations[i].Path
}

// Entries lists every location in table order
func (t *Table) Entries() []Location {
	out := make([]Location, len(t.locations))
	copy(out, t.locations)
	return out
}

// Shortcuts lists every accepted shortcut, sorted
func (t *Table) Shortcuts() []string {
	out := make([]string, 0, len(t.shortcuts))
	for s := range t.shortcuts {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// homeDir falls back to "/" when no home can be determined, matching
// the behaviour every mythos tool shares.
func homeDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return "/"
}

func expandHome(path, home string) string {
	path = strings.ReplaceAll(path, "$HOME", home)
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot make %s absolute", path)
	}
	return abs, nil
}
