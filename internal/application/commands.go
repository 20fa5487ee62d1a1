package application

import (
	"github.com/bnema/pareto-trade/internal/domain"
)

type StartSessionCommand struct {
	ScenarioID domain.ScenarioID
	PlayerName string
}

type SweepCommand struct {
	Totals domain.Holdings
	// Concurrency bounds how many allocation rows are evaluated at once.
	// Zero or less means one worker per row.
	Concurrency int
	// OnRow, when set, is called after each pizza row is evaluated with the
	// number of finished rows and the row count. Calls may come from several
	// goroutines at once.
	OnRow func(done, total int)
}
