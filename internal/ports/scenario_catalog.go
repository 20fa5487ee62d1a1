package ports

import (
	"context"

	"github.com/bnema/pareto-trade/internal/domain"
)

type ScenarioCatalog interface {
	List(ctx context.Context) ([]domain.Scenario, error)
	GetByID(ctx context.Context, id domain.ScenarioID) (domain.Scenario, error)
}
