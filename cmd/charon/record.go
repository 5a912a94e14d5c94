package charon

import (
	"fmt"
	"os"

	"github.com/arthur-debert/charon/pkg/core"
	"github.com/arthur-debert/charon/pkg/record"
	"github.com/arthur-debert/charon/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRecordCmd(a *app) *cobra.Command {
	var (
		dryRun bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "record [UNIT]",
		Short: MsgRecordShort,
		Long: `Record prints the destinations written by the last run of UNIT, with the
status each one got. Without UNIT it lists the units that have a record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			store := core.NewStore(a.fs, a.cfg, a.table)
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				units, err := store.Units()
				if err != nil {
					return err
				}
				if len(units) == 0 {
					fmt.Fprintln(out, MsgNoRecords)
					return nil
				}
				fmt.Fprintln(out, MsgRecordsHeader)
				for _, u := range units {
					fmt.Fprintf(out, MsgRecordItem, u)
				}
				return nil
			}

			entries, err := store.ReadEntries(args[0], dryRun)
			if err != nil {
				return err
			}
			return printEntries(cmd, a, entries, format)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagRecordDry)
	cmd.Flags().StringVar(&format, "format", "table", MsgFlagRecordFmt)
	return cmd
}

func printEntries(cmd *cobra.Command, a *app, entries []record.Entry, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "plain":
		for _, e := range entries {
			fmt.Fprintln(out, e.Path)
		}
		return nil
	case "table":
		if terminalFormat(a) != ui.FormatTerminal {
			pterm.DisableStyling()
			defer pterm.EnableStyling()
		}
		data := pterm.TableData{{"Destination", "Status"}}
		for _, e := range entries {
			data = append(data, []string{e.Path, e.Status})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
		return nil
	default:
		return fmt.Errorf(MsgErrRecordFormat, format)
	}
}

// terminalFormat resolves the configured output format against stdout
func terminalFormat(a *app) ui.Format {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return ui.FormatText
	}
	return format.Resolve(os.Stdout)
}
