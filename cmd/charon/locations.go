package charon

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/charon/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: MsgLocationsShort,
		Long: `Locations prints every destination shortcut usable in a manifest, the
environment variable that overrides it and the directory it resolves to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if terminalFormat(a) != ui.FormatTerminal {
				pterm.DisableStyling()
				defer pterm.EnableStyling()
			}

			data := pterm.TableData{{"Location", "Shortcuts", "Env", "Path"}}
			for _, loc := range a.table.Entries() {
				data = append(data, []string{
					string(loc.Name),
					strings.Join(loc.Shortcuts, ", "),
					"$" + loc.EnvVar,
					loc.Path,
				})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
