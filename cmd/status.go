package cmd

import (
	"fmt"

	"github.com/bnema/pareto-trade/internal/adapters/render/board"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var flags sessionFlags
	var asJSON bool
	var showHint bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show holdings, utilities and Pareto status of a scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := startReplayedSession(cmd, app, flags)
			if err != nil {
				return err
			}

			snapshot := session.Snapshot()
			if asJSON {
				return writeJSON(cmd, snapshot)
			}

			return writeBoard(cmd, app, snapshot, board.RenderOptions{ShowHint: showHint})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&showHint, "hint", false, "Include the suggested improving trade")

	return cmd
}

func newHintCmd(app *app) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "hint",
		Short: "Suggest the best Pareto-improving trade from the current allocation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := startReplayedSession(cmd, app, flags)
			if err != nil {
				return err
			}

			status := session.Status()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", status.Explanation, board.HintText(status))
			return err
		},
	}

	flags.register(cmd)

	return cmd
}
