package cmd

import (
	"fmt"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/spf13/cobra"
)

func newUtilityCmd() *cobra.Command {
	var holdings domain.Holdings
	var weights domain.Weights

	cmd := &cobra.Command{
		Use:         "utility",
		Short:       "Compute the utility of a bundle for the given weights",
		Args:        cobra.NoArgs,
		Annotations: skipWire(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			student, err := domain.NewStudent(domain.StudentA, holdings, weights)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), student.Utility())
			return err
		},
	}

	cmd.Flags().IntVar(&holdings.Pizza, "pizza", 0, "Pizza slices held")
	cmd.Flags().IntVar(&holdings.Soda, "soda", 0, "Soda cans held")
	cmd.Flags().IntVar(&weights.Pizza, "pizza-weight", 1, "Utility per pizza slice")
	cmd.Flags().IntVar(&weights.Soda, "soda-weight", 1, "Utility per soda can")

	return cmd
}
