package cmd

import (
	"fmt"

	"github.com/bnema/pareto-trade/internal/adapters/render/board"
	"github.com/bnema/pareto-trade/internal/application"
	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/spf13/cobra"
)

type tradeOutput struct {
	Result   application.TradeResult
	Snapshot application.Snapshot
}

func newTradeCmd(app *app) *cobra.Command {
	var flags sessionFlags
	var barter domain.Barter
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Propose a barter between the two students",
		Long:  "trade replays any --move flags into a fresh session, then proposes one barter: what student A gives and what student B gives in return.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := startReplayedSession(cmd, app, flags)
			if err != nil {
				return err
			}

			result, err := session.Propose(barter)
			if err != nil {
				return fmt.Errorf("trade rejected: %s: %w", application.Guidance(err), err)
			}

			if asJSON {
				return writeJSON(cmd, tradeOutput{Result: result, Snapshot: session.Snapshot()})
			}

			return writeBoard(cmd, app, session.Snapshot(), board.RenderOptions{LastResult: &result})
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&barter.A.Pizza, "a-pizza", 0, "Pizza slices student A gives")
	cmd.Flags().IntVar(&barter.A.Soda, "a-soda", 0, "Soda cans student A gives")
	cmd.Flags().IntVar(&barter.B.Pizza, "b-pizza", 0, "Pizza slices student B gives")
	cmd.Flags().IntVar(&barter.B.Soda, "b-soda", 0, "Soda cans student B gives")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
