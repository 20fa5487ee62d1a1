package cmd

import (
	"github.com/bnema/pareto-trade/internal/adapters/tui/play"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *app) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the trading game interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := startReplayedSession(cmd, app, flags)
			if err != nil {
				return err
			}

			return play.Run(cmd.Context(), session, app.service, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags.register(cmd)

	return cmd
}
