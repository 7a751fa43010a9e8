package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fixturegen/internal/config"
)

const ConfigFlagName = "config"

// app is the state shared by the subcommands once the root pre-run hook has
// loaded the configuration.
type app struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	err := New().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// New builds the root command.
func New() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "fixturegen [sub-command]",
		Short: "Generate random fixture values for Go types",
		Long: `fixturegen scans Go packages for types a fixture generator can build,
writes catalogs of those types, and prints generated sample values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: a.preRun,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().String(ConfigFlagName, "", "path to a YAML config file")
	RegisterLoggingFlags(cmd.PersistentFlags())

	cmd.AddCommand(newScanCommand(a))
	cmd.AddCommand(newCatalogCommand(a))
	cmd.AddCommand(newSampleCommand(a))

	return cmd
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Flags().GetString(LevelFlagName)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString(FormatFlagName)
	if err != nil {
		return err
	}

	a.logger, err = newLogger(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}

	path, err := cmd.Flags().GetString(ConfigFlagName)
	if err != nil {
		return err
	}

	if path == "" {
		a.cfg = config.Default()
	} else {
		a.cfg, err = config.LoadFile(path)
		if err != nil {
			return err
		}
	}

	a.logger.WithField("config", path).Debug("configuration loaded")

	return nil
}

// patterns returns args, or the configured packages when none are given.
func (a *app) patterns(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return a.cfg.Packages
}
