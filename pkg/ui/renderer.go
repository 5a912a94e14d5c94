package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/executor"
	"github.com/arthur-debert/charon/pkg/ui/styles"
)

// NewRenderer returns the result renderer for format. FormatAuto is
// resolved against output.
func NewRenderer(format Format, output *os.File) executor.Renderer {
	if format.Resolve(output) == FormatTerminal {
		return TerminalRenderer{}
	}
	return executor.PlainRenderer{}
}

// TerminalRenderer styles each entry by its status
type TerminalRenderer struct{}

var _ executor.Renderer = TerminalRenderer{}

func (TerminalRenderer) Render(w io.Writer, res actions.Result) error {
	var b strings.Builder
	for _, e := range res.Entries {
		dest := strings.ReplaceAll(e.Dest, `"`, "")
		msg := strings.ReplaceAll(e.Message(), `"`, "")
		b.WriteString(styles.GetStyle("Path").Render(dest))
		b.WriteString("\n\t")
		b.WriteString(styles.GetStyle(StatusStyle(e.Status)).Render("# " + msg))
		b.WriteString("\n")
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

// StatusStyle names the style used for a status
func StatusStyle(s actions.Status) string {
	switch s {
	case actions.StatusCopied, actions.StatusDirCreated:
		return "Success"
	case actions.StatusSkippedExists, actions.StatusDirExists:
		return "Muted"
	case actions.StatusDirConflict:
		return "Warning"
	case actions.StatusCopyFailed, actions.StatusDirFailed:
		return "Error"
	default:
		return "Info"
	}
}
