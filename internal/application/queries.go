package application

import (
	"time"

	"github.com/bnema/pareto-trade/internal/domain"
)

type StudentView struct {
	Student domain.Student
	Utility int
}

type HistoryEntry struct {
	Sequence   int
	Barter     domain.Barter
	Trade      domain.Trade
	Outcome    domain.Outcome
	ExecutedAt time.Time
}

type TradeResult struct {
	Barter  domain.Barter
	Trade   domain.Trade
	BeforeA int
	BeforeB int
	AfterA  int
	AfterB  int
	Outcome domain.Outcome
	Message string
}

type Snapshot struct {
	SessionID  string
	PlayerName string
	Scenario   domain.Scenario
	StartedAt  time.Time
	A          StudentView
	B          StudentView
	Status     domain.ParetoStatus
	History    []HistoryEntry
}

type SweepCell struct {
	A      domain.Holdings
	B      domain.Holdings
	Status domain.ParetoStatus
}

// SweepResult holds one row per pizza amount held by A and one column per
// soda amount held by A.
type SweepResult struct {
	Totals    domain.Holdings
	WeightsA  domain.Weights
	WeightsB  domain.Weights
	Rows      [][]SweepCell
	Efficient int
}
