// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format parsing and result rendering

package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/executor"
	"github.com/arthur-debert/charon/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ui.Format
		wantErr bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"TERM", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"text", ui.FormatText, false},
		{"json", ui.FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.Equal(t, ui.FormatTerminal, ui.FormatTerminal.Resolve(f))
	assert.IsType(t, executor.PlainRenderer{}, ui.NewRenderer(ui.FormatAuto, f))
	assert.IsType(t, ui.TerminalRenderer{}, ui.NewRenderer(ui.FormatTerminal, f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestTerminalRenderer(t *testing.T) {
	res := actions.Result{Entries: []actions.Entry{
		{Dest: "/opt/bin/tool", Status: actions.StatusCopied, Perms: 0o755},
		{Dest: `/opt/"x"`, Status: actions.StatusSkippedExists},
	}}

	var buf bytes.Buffer
	require.NoError(t, ui.TerminalRenderer{}.Render(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "/opt/bin/tool")
	assert.Contains(t, out, "Copied!")
	assert.Contains(t, out, actions.MsgSkippedExists)
	assert.NotContains(t, out, `"`)
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, "Success", ui.StatusStyle(actions.StatusCopied))
	assert.Equal(t, "Error", ui.StatusStyle(actions.StatusCopyFailed))
	assert.Equal(t, "Warning", ui.StatusStyle(actions.StatusDirConflict))
	assert.Equal(t, "Muted", ui.StatusStyle(actions.StatusDirExists))
}
