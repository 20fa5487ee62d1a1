package application

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/bnema/pareto-trade/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidTotals = errors.New("per-good totals must not be negative")

type Options struct {
	WeightsA domain.Weights
	WeightsB domain.Weights
}

type GameService struct {
	catalog  ports.ScenarioCatalog
	clock    ports.Clock
	logger   *zap.Logger
	weightsA domain.Weights
	weightsB domain.Weights
	newID    func() string
}

func NewGameService(catalog ports.ScenarioCatalog, clock ports.Clock, logger *zap.Logger, opts Options) (*GameService, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := opts.WeightsA.Validate(); err != nil {
		return nil, fmt.Errorf("student A weights: %w", err)
	}
	if err := opts.WeightsB.Validate(); err != nil {
		return nil, fmt.Errorf("student B weights: %w", err)
	}

	return &GameService{
		catalog:  catalog,
		clock:    clock,
		logger:   logger,
		weightsA: opts.WeightsA,
		weightsB: opts.WeightsB,
		newID:    uuid.NewString,
	}, nil
}

func (s *GameService) Weights() (domain.Weights, domain.Weights) {
	return s.weightsA, s.weightsB
}

func (s *GameService) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	scenarios, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}

	return scenarios, nil
}

func (s *GameService) GetScenario(ctx context.Context, id domain.ScenarioID) (domain.Scenario, error) {
	scenario, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("get scenario %q: %w", id, err)
	}

	return scenario, nil
}

func (s *GameService) StartSession(ctx context.Context, cmd StartSessionCommand) (*Session, error) {
	player, err := domain.NormalizePlayerName(cmd.PlayerName)
	if err != nil {
		return nil, err
	}

	scenarioID := cmd.ScenarioID
	if scenarioID == "" {
		scenarioID = domain.DefaultScenarioID
	}

	scenario, err := s.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}

	a, b, err := scenario.Students(s.weightsA, s.weightsB)
	if err != nil {
		return nil, fmt.Errorf("build students for scenario %q: %w", scenario.ID, err)
	}

	session := newSession(s.newID(), player, scenario, a, b, s.clock, s.logger)
	s.logger.Info("session started",
		zap.String("session_id", session.ID()),
		zap.String("scenario", string(scenario.ID)),
		zap.String("player", player),
	)

	return session, nil
}

func (s *GameService) SwitchScenario(ctx context.Context, session *Session, id domain.ScenarioID) error {
	scenario, err := s.GetScenario(ctx, id)
	if err != nil {
		return err
	}

	return session.SwitchScenario(scenario)
}

// Sweep evaluates the Pareto status of every allocation of cmd.Totals between
// the two students. Rows are computed concurrently; each evaluation is pure.
// Progress is reported through cmd.OnRow as rows finish.
func (s *GameService) Sweep(ctx context.Context, cmd SweepCommand) (SweepResult, error) {
	if err := cmd.Totals.Validate(); err != nil {
		return SweepResult{}, fmt.Errorf("%w: %v", ErrInvalidTotals, err)
	}

	rows := make([][]SweepCell, cmd.Totals.Pizza+1)
	var finished atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if cmd.Concurrency > 0 {
		g.SetLimit(cmd.Concurrency)
	}

	for pizza := range rows {
		pizza := pizza
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			row := make([]SweepCell, cmd.Totals.Soda+1)
			for soda := range row {
				holdingsA := domain.Holdings{Pizza: pizza, Soda: soda}
				holdingsB := cmd.Totals.Sub(holdingsA)
				a := domain.Student{ID: domain.StudentA, Holdings: holdingsA, Weights: s.weightsA}
				b := domain.Student{ID: domain.StudentB, Holdings: holdingsB, Weights: s.weightsB}

				row[soda] = SweepCell{A: holdingsA, B: holdingsB, Status: domain.CheckParetoStatus(a, b)}
			}
			rows[pizza] = row

			done := finished.Add(1)
			if cmd.OnRow != nil {
				cmd.OnRow(int(done), len(rows))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SweepResult{}, fmt.Errorf("sweep allocations: %w", err)
	}

	result := SweepResult{
		Totals:   cmd.Totals,
		WeightsA: s.weightsA,
		WeightsB: s.weightsB,
		Rows:     rows,
	}
	for _, row := range rows {
		for _, cell := range row {
			if cell.Status.IsEfficient {
				result.Efficient++
			}
		}
	}

	s.logger.Debug("sweep finished",
		zap.Int("allocations", (cmd.Totals.Pizza+1)*(cmd.Totals.Soda+1)),
		zap.Int("efficient", result.Efficient),
	)

	return result, nil
}
