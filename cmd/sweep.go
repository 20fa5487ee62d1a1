package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/pareto-trade/internal/adapters/render/board"
	"github.com/bnema/pareto-trade/internal/application"
	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

const defaultSweepTotal = 8

func newSweepCmd(app *app) *cobra.Command {
	var totals domain.Holdings
	var concurrency int
	var asJSON bool
	var profileDir string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate Pareto status for every split of the given totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if profileDir != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
			}

			sweep := func(ctx context.Context, onRow func(done, total int)) (application.SweepResult, error) {
				return app.service.Sweep(ctx, application.SweepCommand{
					Totals:      totals,
					Concurrency: concurrency,
					OnRow:       onRow,
				})
			}

			if asJSON {
				result, err := sweep(cmd.Context(), nil)
				if err != nil {
					return err
				}
				return writeJSON(cmd, result)
			}

			result, err := sweepWithProgress(cmd.Context(), cmd.ErrOrStderr(), sweep)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), board.RenderSweep(result))
			return err
		},
	}

	cmd.Flags().IntVar(&totals.Pizza, "pizza-total", defaultSweepTotal, "Pizza slices shared by both students")
	cmd.Flags().IntVar(&totals.Soda, "soda-total", defaultSweepTotal, "Soda cans shared by both students")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Rows evaluated at once (0 means no limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().StringVar(&profileDir, "profile-dir", "", "Write a CPU profile to this directory")

	return cmd
}
