package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	envFile     string
	verbose     bool
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "statedeck",
		Short:         "statedeck is a terminal dashboard over shared application state",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Dotenv file with STATEDECK_* overrides")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve /metrics and /healthz on this address")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newItemsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
