// pkg/locations/locations_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment (MYTHOS_* variables, HOME)
// PURPOSE: Test shortcut resolution and the env > config > default priority

package locations

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/charon/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{EnvAliasDir, EnvBinDir, EnvConfigDir, EnvDataDir, EnvLibDir, EnvLocalConfigDir, EnvLocalDataDir} {
		t.Setenv(v, "")
	}
}

func testLocations() config.Locations {
	return config.Locations{
		Alias:       "/etc/profile.d",
		Bin:         "/bin",
		Config:      "/etc/mythos",
		Data:        "/usr/share/mythos",
		Lib:         "/usr/lib/mythos",
		LocalConfig: "~/.config/mythos",
		LocalData:   "$HOME/.local/share/mythos",
	}
}

func TestResolve(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/tester")

	table, err := New(testLocations())
	require.NoError(t, err)

	tests := []struct {
		shortcut string
		want     string
	}{
		{"$A", "/etc/profile.d"},
		{"ALIAS", "/etc/profile.d"},
		{"$B", "/bin"},
		{"$BIN", "/bin"},
		{"C", "/etc/mythos"},
		{"$CONFIG", "/etc/mythos"},
		{"$D", "/usr/share/mythos"},
		{"DATA", "/usr/share/mythos"},
		{"$LB", "/usr/lib/mythos"},
		{"$LIB", "/usr/lib/mythos"},
		{"$LC", "/home/tester/.config/mythos"},
		{"$LCONFIG", "/home/tester/.config/mythos"},
		{"LOCALCONFIG", "/home/tester/.config/mythos"},
		{"$LD", "/home/tester/.local/share/mythos"},
		{"LDATA", "/home/tester/.local/share/mythos"},
		{"LOCALDATA", "/home/tester/.local/share/mythos"},
		{"$HOME", "/home/tester"},
		{"~", "/home/tester"},
	}

	for _, tt := range tests {
		t.Run(tt.shortcut, func(t *testing.T) {
			got, ok := table.Resolve(tt.shortcut)
			require.True(t, ok)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestResolve_NotAShortcut(t *testing.T) {
	clearEnv(t)
	table, err := New(testLocations())
	require.NoError(t, err)

	for _, name := range []string{"", "usr", "$X", "config", "c", "bin/"} {
		_, ok := table.Resolve(name)
		assert.False(t, ok, "%q should not resolve", name)
	}
}

func TestNew_EnvOverridesConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, filepath.Join(dir, "config"))
	t.Setenv(EnvLocalDataDir, "relative/ldata")

	table, err := New(testLocations())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config"), table.Path(Config))

	abs, err := filepath.Abs("relative/ldata")
	require.NoError(t, err)
	assert.Equal(t, abs, table.Path(LocalData))

	// not overridden
	assert.Equal(t, "/bin", table.Path(Bin))
}

func TestNew_MissingBase(t *testing.T) {
	clearEnv(t)
	locs := testLocations()
	locs.Lib = ""

	_, err := New(locs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lib")
}

func TestEntriesAndShortcuts(t *testing.T) {
	clearEnv(t)
	table, err := New(testLocations())
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 8)
	assert.Equal(t, Alias, entries[0].Name)
	assert.Equal(t, Home, entries[7].Name)

	shortcuts := table.Shortcuts()
	assert.Contains(t, shortcuts, "LOCALCONFIG")
	assert.Contains(t, shortcuts, "~")
	assert.Equal(t, "", table.Path(Name("nowhere")))
}
