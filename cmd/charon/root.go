package charon

import (
	"fmt"
	"os"

	"github.com/arthur-debert/charon/internal/version"
	"github.com/arthur-debert/charon/pkg/cobrax/topics"
	"github.com/arthur-debert/charon/pkg/config"
	"github.com/arthur-debert/charon/pkg/filesystem"
	"github.com/arthur-debert/charon/pkg/locations"
	"github.com/arthur-debert/charon/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries global flags and the lazily loaded configuration
type app struct {
	verbosity  int
	configFile string
	format     string

	fs    afero.Fs
	cfg   *config.Config
	table *locations.Table
}

func (a *app) load() error {
	if a.cfg != nil {
		return nil
	}
	opts := config.LoadOptions{ConfigFile: a.configFile}
	if a.format != "" {
		opts.Overrides = map[string]interface{}{"output.format": a.format}
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	table, err := locations.New(cfg.Locations)
	if err != nil {
		return fmt.Errorf(MsgErrLocations, err)
	}
	a.cfg, a.table = cfg, table
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{fs: filesystem.NewOS()}
	flags := &installFlags{}

	rootCmd := &cobra.Command{
		Use:     "charon [PATH]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, a, flags, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	flags.bind(rootCmd)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newRecordCmd(a))
	rootCmd.AddCommand(newLocationsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if _, err := topics.Initialize(rootCmd, helpTopics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: help topics unavailable: %v\n", err)
	}

	return rootCmd
}
