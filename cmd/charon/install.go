package charon

import (
	"fmt"
	"os"

	"github.com/arthur-debert/charon/pkg/core"
	"github.com/arthur-debert/charon/pkg/ui"
	"github.com/spf13/cobra"
)

type installFlags struct {
	dryRun      bool
	noRmOrphans bool
	quiet       bool
}

func (f *installFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVarP(&f.noRmOrphans, "no-rm-orphans", "o", false, MsgFlagNoRmOrphans)
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, MsgFlagQuiet)
}

func newInstallCmd(a *app) *cobra.Command {
	flags := &installFlags{}
	cmd := &cobra.Command{
		Use:     "install [PATH]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, a, flags, args)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runInstall(cmd *cobra.Command, a *app, flags *installFlags, args []string) error {
	if err := a.load(); err != nil {
		return err
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	quiet := flags.quiet || a.cfg.Run.Quiet
	result, err := core.Install(core.InstallOptions{
		FS:            a.fs,
		ManifestPath:  target,
		Cwd:           cwd,
		DryRun:        flags.dryRun,
		RemoveOrphans: a.cfg.Run.RemoveOrphans && !flags.noRmOrphans,
		Quiet:         quiet,
		SortSources:   a.cfg.Run.SortSources,
		Resolve:       a.table.Resolve,
		Store:         core.NewStore(a.fs, a.cfg, a.table),
		Renderer:      ui.NewRenderer(format, os.Stdout),
		Out:           cmd.OutOrStdout(),
		Errors:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}
	if flags.dryRun {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgDryRunNotice, result.RecordPath)
	} else if result.Removal == nil && len(result.Orphans) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgOrphansKept, len(result.Orphans))
	}
	return nil
}
