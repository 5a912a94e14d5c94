// pkg/actions/actions_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, OS tempdir for copy failures
// PURPOSE: Test file install and directory creation semantics

package actions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claims struct {
	paths []string
}

func (c *claims) Claim(path string) { c.paths = append(c.paths, path) }

func newCtx(fs afero.Fs, dryRun bool) (actions.ExecContext, *claims) {
	c := &claims{}
	return actions.ExecContext{
		FS:          fs,
		DryRun:      dryRun,
		SortSources: true,
		Claims:      c,
		Logger:      zerolog.Nop(),
	}, c
}

func writeFile(t *testing.T, fs afero.Fs, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), mode))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestFileInstall_Filtering(t *testing.T) {
	tests := []struct {
		name string
		opts actions.Opts
		want []string
	}{
		{"defaults", actions.Opts{}, []string{"a.txt"}},
		{"underscore", actions.Opts{CopyUnderscoreFiles: true}, []string{"_b.txt", "a.txt"}},
		{"dot", actions.Opts{CopyDotFiles: true}, []string{".c.txt", "a.txt"}},
		{"both", actions.Opts{CopyUnderscoreFiles: true, CopyDotFiles: true}, []string{".c.txt", "_b.txt", "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, name := range []string{"a.txt", "_b.txt", ".c.txt"} {
				writeFile(t, fs, filepath.Join("/src", name), name, 0644)
			}
			require.NoError(t, fs.MkdirAll("/dest", 0755))

			ctx, c := newCtx(fs, false)
			res := actions.FileInstall{SourceDir: "/src", SourcePattern: "*", DestDir: "/dest", Opts: tt.opts}.Execute(ctx)
			require.NoError(t, res.Err)

			var installed []string
			for _, e := range res.Entries {
				assert.Equal(t, actions.StatusCopied, e.Status)
				installed = append(installed, filepath.Base(e.Dest))
			}
			assert.Equal(t, tt.want, installed)
			assert.Len(t, c.paths, len(tt.want))

			for _, name := range tt.want {
				assert.Equal(t, name, readFile(t, fs, filepath.Join("/dest", name)))
			}
		})
	}
}

func TestFileInstall_Overwrite(t *testing.T) {
	t.Run("existing_destination_is_kept", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/src/tool.sh", "new", 0644)
		writeFile(t, fs, "/bin/tool.sh", "old", 0644)

		ctx, c := newCtx(fs, false)
		res := actions.FileInstall{SourceDir: "/src", SourcePattern: "tool.sh", DestDir: "/bin"}.Execute(ctx)

		require.Len(t, res.Entries, 1)
		assert.Equal(t, actions.StatusSkippedExists, res.Entries[0].Status)
		assert.Equal(t, "old", readFile(t, fs, "/bin/tool.sh"))
		assert.Equal(t, "/bin/tool.sh\n\t# Did not copy: File exists && !overwrite\n", res.Log())
		assert.Equal(t, []string{"/bin/tool.sh"}, c.paths)
	})

	t.Run("overwrite_replaces_bytes", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/src/tool.sh", "new", 0644)
		writeFile(t, fs, "/bin/tool.sh", "old", 0644)

		ctx, _ := newCtx(fs, false)
		opts := actions.Opts{Overwrite: true, Perms: 0o755}
		res := actions.FileInstall{SourceDir: "/src", SourcePattern: "tool.sh", DestDir: "/bin", Opts: opts}.Execute(ctx)

		require.Len(t, res.Entries, 1)
		e := res.Entries[0]
		assert.Equal(t, actions.StatusCopied, e.Status)
		assert.True(t, e.Overwritten)
		assert.Equal(t, "new", readFile(t, fs, "/bin/tool.sh"))
		assert.Equal(t, "/bin/tool.sh\n\t# Copied! File was overwritten.\t755\n", res.Log())
	})
}

func TestFileInstall_Permissions(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/run", "#!/bin/sh", 0644)
	require.NoError(t, fs.MkdirAll("/bin", 0755))

	ctx, _ := newCtx(fs, false)
	res := actions.FileInstall{SourceDir: "/src", SourcePattern: "run", DestDir: "/bin", Opts: actions.Opts{Perms: 0o700}}.Execute(ctx)
	require.Len(t, res.Entries, 1)

	dst, err := fs.Stat("/bin/run")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dst.Mode().Perm())

	src, err := fs.Stat("/src/run")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), src.Mode().Perm(), "source mode must not change")
}

func TestFileInstall_StripExt(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/deploy.sh", "x", 0644)
	writeFile(t, fs, "/src/.profile", "x", 0644)
	require.NoError(t, fs.MkdirAll("/bin", 0755))

	ctx, c := newCtx(fs, false)
	opts := actions.Opts{StripExt: true, CopyDotFiles: true}
	actions.FileInstall{SourceDir: "/src", DestDir: "/bin", Opts: opts}.Execute(ctx)

	assert.Equal(t, []string{"/bin/.profile", "/bin/deploy"}, c.paths)
	assert.True(t, exists(fs, "/bin/deploy"))
}

func TestFileInstall_DryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/a", "a", 0644)

	ctx, c := newCtx(fs, true)
	opts := actions.Opts{Perms: 0o755, CreatePath: true}
	res := actions.FileInstall{SourceDir: "/src", SourcePattern: "*", DestDir: "/missing/bin", Opts: opts}.Execute(ctx)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, actions.StatusCopied, res.Entries[0].Status)
	assert.Equal(t, "/missing/bin/a\n\t# Copied! \t755 (dry run)\n", res.Log())
	assert.Equal(t, []string{"/missing/bin/a"}, c.paths)
	assert.False(t, exists(fs, "/missing"))
}

func TestFileInstall_NoMatches(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/src", 0755))

	ctx, c := newCtx(fs, false)
	res := actions.FileInstall{SourceDir: "/src", SourcePattern: "*.conf", DestDir: "/etc"}.Execute(ctx)

	assert.NoError(t, res.Err)
	assert.Empty(t, res.Entries)
	assert.Empty(t, res.Log())
	assert.Empty(t, c.paths)
}

func TestFileInstall_LiteralNameWithBrackets(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/file[1].txt", "one", 0644)
	writeFile(t, fs, "/src/file1.txt", "other", 0644)
	require.NoError(t, fs.MkdirAll("/dest", 0755))

	ctx, c := newCtx(fs, false)
	res := actions.FileInstall{SourceDir: "/src", SourcePattern: "file[1].txt", DestDir: "/dest"}.Execute(ctx)
	require.NoError(t, res.Err)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "/dest/file[1].txt", res.Entries[0].Dest)
	assert.Equal(t, actions.StatusCopied, res.Entries[0].Status)
	assert.Equal(t, "one", readFile(t, fs, "/dest/file[1].txt"))
	assert.Equal(t, []string{"/dest/file[1].txt"}, c.paths)
}

func TestIsPattern(t *testing.T) {
	assert.True(t, actions.IsPattern("*.sh"))
	assert.True(t, actions.IsPattern(""))
	assert.False(t, actions.IsPattern("file[1].txt"))
	assert.False(t, actions.IsPattern("what?"))
}

func TestFileInstall_CreatePath(t *testing.T) {
	root := t.TempDir()
	fs := afero.NewOsFs()
	src := filepath.Join(root, "src")
	writeFile(t, fs, filepath.Join(src, "a"), "a", 0644)
	writeFile(t, fs, filepath.Join(src, "b"), "b", 0644)

	t.Run("missing_destination_fails_each_copy", func(t *testing.T) {
		dest := filepath.Join(root, "nodir")
		ctx, _ := newCtx(fs, false)
		res := actions.FileInstall{SourceDir: src, SourcePattern: "*", DestDir: dest}.Execute(ctx)

		require.Len(t, res.Entries, 2)
		for _, e := range res.Entries {
			assert.Equal(t, actions.StatusCopyFailed, e.Status)
			assert.Error(t, e.Err)
			assert.Contains(t, e.Message(), "Did not copy. Error:")
		}
		assert.Len(t, res.Failures(), 2)
		assert.NoError(t, res.Err)
	})

	t.Run("p_option_creates_destination", func(t *testing.T) {
		dest := filepath.Join(root, "made", "bin")
		ctx, _ := newCtx(fs, false)
		res := actions.FileInstall{SourceDir: src, SourcePattern: "*", DestDir: dest, Opts: actions.Opts{CreatePath: true}}.Execute(ctx)

		require.Len(t, res.Entries, 2)
		assert.Empty(t, res.Failures())
		assert.Equal(t, "b", readFile(t, fs, filepath.Join(dest, "b")))
	})
}

func TestDirCreate(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/usr/share/mythos", 0755))
		action := actions.DirCreate{DestDir: "/usr/share/mythos/tool"}

		ctx, c := newCtx(fs, false)
		first := action.Execute(ctx)
		require.NoError(t, first.Err)
		assert.Equal(t, actions.StatusDirCreated, first.Entries[0].Status)
		assert.Equal(t, "/usr/share/mythos/tool\n\t# Created directory!\n", first.Log())

		second := action.Execute(ctx)
		require.NoError(t, second.Err)
		assert.Equal(t, actions.StatusDirExists, second.Entries[0].Status)
		assert.Equal(t, "/usr/share/mythos/tool\n\t# Did not create: Directory exists.\n", second.Log())

		assert.Equal(t, []string{"/usr/share/mythos/tool", "/usr/share/mythos/tool"}, c.paths)
	})

	t.Run("file_in_the_way", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/data/tool", "x", 0644)

		ctx, c := newCtx(fs, false)
		res := actions.DirCreate{DestDir: "/data/tool"}.Execute(ctx)
		require.NoError(t, res.Err)
		assert.Equal(t, actions.StatusDirConflict, res.Entries[0].Status)
		assert.Equal(t, actions.MsgDirConflict, res.Entries[0].Message())
		assert.Equal(t, []string{"/data/tool"}, c.paths)
	})

	t.Run("dry_run_claims_without_creating", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		ctx, c := newCtx(fs, true)
		res := actions.DirCreate{DestDir: "/data/tool"}.Execute(ctx)

		require.NoError(t, res.Err)
		assert.Equal(t, "Created directory! (dry run)", res.Entries[0].Message())
		assert.False(t, exists(fs, "/data/tool"))
		assert.Equal(t, []string{"/data/tool"}, c.paths)
	})

	t.Run("failure_sets_result_error", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		ctx, _ := newCtx(fs, false)
		res := actions.DirCreate{DestDir: "/data/tool"}.Execute(ctx)

		assert.Error(t, res.Err)
		assert.Equal(t, actions.StatusDirFailed, res.Entries[0].Status)
	})
}

func TestEntryLog_StripsQuotes(t *testing.T) {
	e := actions.Entry{Dest: `/tmp/"odd"`, Status: actions.StatusDirExists}
	assert.Equal(t, "/tmp/odd\n\t# Did not create: Directory exists.\n", e.Log())
}

func TestOpts_FileMode(t *testing.T) {
	assert.Equal(t, os.FileMode(0o755), actions.Opts{Perms: 0o755}.FileMode())
	assert.Equal(t, os.FileMode(0o755)|os.ModeSetuid, actions.Opts{Perms: 0o4755}.FileMode())
	assert.False(t, actions.Opts{}.HasPerms())
}

func exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
