package application

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/bnema/pareto-trade/internal/ports"
	"go.uber.org/zap"
)

var ErrAlreadyEfficient = errors.New("allocation is already pareto efficient")

// Session is the state of one game. It is owned by a single caller and is not
// safe for concurrent use.
type Session struct {
	id        string
	player    string
	scenario  domain.Scenario
	startedAt time.Time
	a         domain.Student
	b         domain.Student
	history   []HistoryEntry
	clock     ports.Clock
	logger    *zap.Logger
}

func newSession(id, player string, scenario domain.Scenario, a, b domain.Student, clock ports.Clock, logger *zap.Logger) *Session {
	return &Session{
		id:        id,
		player:    player,
		scenario:  scenario,
		startedAt: clock.Now(),
		a:         a,
		b:         b,
		clock:     clock,
		logger:    logger.With(zap.String("session_id", id)),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) PlayerName() string {
	return s.player
}

func (s *Session) Scenario() domain.Scenario {
	return s.scenario
}

func (s *Session) Students() (domain.Student, domain.Student) {
	return s.a, s.b
}

func (s *Session) History() []HistoryEntry {
	return slices.Clone(s.history)
}

func (s *Session) Status() domain.ParetoStatus {
	return domain.CheckParetoStatus(s.a, s.b)
}

// Propose validates the barter in both directions, collapses it into the net
// A->B trade and executes it. Both students are replaced together or not at
// all; a rejected proposal leaves the session untouched.
func (s *Session) Propose(barter domain.Barter) (TradeResult, error) {
	if err := domain.ValidateBarter(s.a, s.b, barter); err != nil {
		s.logger.Debug("trade rejected",
			zap.Int("a_pizza", barter.A.Pizza),
			zap.Int("a_soda", barter.A.Soda),
			zap.Int("b_pizza", barter.B.Pizza),
			zap.Int("b_soda", barter.B.Soda),
			zap.Error(err),
		)
		return TradeResult{}, err
	}

	net := barter.Net()
	newA, newB := domain.ExecuteTrade(s.a, s.b, net)

	beforeA, beforeB := domain.Utility(s.a), domain.Utility(s.b)
	afterA, afterB := domain.Utility(newA), domain.Utility(newB)
	outcome := domain.ClassifyOutcome(beforeA, beforeB, afterA, afterB)

	s.a, s.b = newA, newB
	s.history = append(s.history, HistoryEntry{
		Sequence:   len(s.history) + 1,
		Barter:     barter,
		Trade:      net,
		Outcome:    outcome,
		ExecutedAt: s.clock.Now(),
	})

	s.logger.Info("trade executed",
		zap.Int("net_pizza", net.Pizza),
		zap.Int("net_soda", net.Soda),
		zap.Int("utility_a", afterA),
		zap.Int("utility_b", afterB),
		zap.String("outcome", string(outcome)),
	)

	return TradeResult{
		Barter:  barter,
		Trade:   net,
		BeforeA: beforeA,
		BeforeB: beforeB,
		AfterA:  afterA,
		AfterB:  afterB,
		Outcome: outcome,
		Message: OutcomeMessage(outcome, s.player),
	}, nil
}

// Replay proposes each barter in order and stops at the first rejection.
func (s *Session) Replay(moves []domain.Barter) error {
	for i, move := range moves {
		if _, err := s.Propose(move); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return nil
}

// ApplySuggestion executes the trade suggested by the current Pareto status.
func (s *Session) ApplySuggestion() (TradeResult, error) {
	status := s.Status()
	if !status.CanImprove || status.SuggestedTrade == nil {
		return TradeResult{}, ErrAlreadyEfficient
	}

	return s.Propose(domain.BarterFromNet(*status.SuggestedTrade))
}

// Reset restores the active scenario's starting allocation and clears history.
func (s *Session) Reset() {
	s.restart(s.scenario)
	s.logger.Info("session reset", zap.String("scenario", string(s.scenario.ID)))
}

// SwitchScenario replaces the allocation with the scenario's starting one and
// clears history. Weights are kept.
func (s *Session) SwitchScenario(scenario domain.Scenario) error {
	if err := scenario.Validate(); err != nil {
		return err
	}

	s.restart(scenario)
	s.logger.Info("scenario switched", zap.String("scenario", string(scenario.ID)))
	return nil
}

func (s *Session) restart(scenario domain.Scenario) {
	s.scenario = scenario
	s.a, s.b = s.a.WithHoldings(scenario.InitialA), s.b.WithHoldings(scenario.InitialB)
	s.history = nil
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  s.id,
		PlayerName: s.player,
		Scenario:   s.scenario,
		StartedAt:  s.startedAt,
		A:          StudentView{Student: s.a, Utility: domain.Utility(s.a)},
		B:          StudentView{Student: s.b, Utility: domain.Utility(s.b)},
		Status:     s.Status(),
		History:    s.History(),
	}
}
