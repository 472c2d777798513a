package main

import (
	"github.com/rpgo/sekfmt/internal/config"
	"github.com/rpgo/sekfmt/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once the root command has run.
type app struct {
	envFile  string
	verbose  bool
	settings *config.Settings
	log      logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NopLogger{}}

	root := &cobra.Command{
		Use:          "sekfmt",
		Short:        "Format amounts as Swedish krona (sv-SE, SEK)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if a.envFile != "" {
				files = append(files, a.envFile)
			}
			settings, err := config.LoadSettings(files...)
			if err != nil {
				return err
			}
			a.settings = settings

			level := settings.LogLevel
			if a.verbose {
				level = "debug"
			}
			a.log = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			a.log.Debugf("settings loaded: log_level=%s output=%s", settings.LogLevel, settings.Output)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file with SEKFMT_* settings (default .env)")

	root.AddCommand(newFormatCmd(a), newStatementCmd(a))
	return root
}
