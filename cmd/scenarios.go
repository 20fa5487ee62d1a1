package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/spf13/cobra"
)

type scenarioWriter interface {
	Path() string
	Save(ctx context.Context, scenarios []domain.Scenario, overwrite bool) error
}

func newScenariosCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Manage starting allocations",
	}

	cmd.AddCommand(
		newScenariosListCmd(app),
		newScenariosInitCmd(app),
	)

	return cmd
}

func newScenariosListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenarios, err := app.service.ListScenarios(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, scenarios)
			}

			for _, scenario := range scenarios {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tA %d/%d\tB %d/%d\n",
					scenario.ID,
					scenario.Name,
					scenario.InitialA.Pizza, scenario.InitialA.Soda,
					scenario.InitialB.Pizza, scenario.InitialB.Soda,
				)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newScenariosInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in scenarios to the scenarios file for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer, ok := app.catalog.(scenarioWriter)
			if !ok {
				return fmt.Errorf("scenarios file %s is read only; point scenarios.path at a .toml file", app.config.ScenariosPath)
			}

			scenarios := domain.DefaultScenarios()
			if err := writer.Save(cmd.Context(), scenarios, force); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %d scenarios to %s\n", len(scenarios), writer.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scenarios file")

	return cmd
}
