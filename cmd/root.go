package cmd

import "github.com/spf13/cobra"

// skipWireAnnotation marks commands that run without config, logger or catalog.
const skipWireAnnotation = "pareto/skip-wire"

func skipWire() map[string]string {
	return map[string]string{skipWireAnnotation: "true"}
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "pareto",
		Short:         "Pareto trading game: barter pizza and soda between two students",
		Long:          "pareto is a teaching game about Pareto efficiency. Two students hold pizza and soda and value them differently; propose barters, watch utilities move, and find the allocations no trade can improve.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}
			return app.wire(opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "Directory holding config.toml (default $XDG_CONFIG_HOME/pareto)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newScenariosCmd(app),
		newUtilityCmd(),
		newStatusCmd(app),
		newTradeCmd(app),
		newHintCmd(app),
		newSweepCmd(app),
		newPlayCmd(app),
	)

	return rootCmd
}
