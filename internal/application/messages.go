package application

import (
	"errors"
	"fmt"

	"github.com/bnema/pareto-trade/internal/domain"
)

// OutcomeMessage is the feedback shown to the player after a trade executes.
func OutcomeMessage(outcome domain.Outcome, player string) string {
	switch outcome {
	case domain.OutcomeParetoImprovement:
		return fmt.Sprintf("Excellent work, %s! This is a Pareto Improvement - both students are better off!", player)
	case domain.OutcomeWeakImprovement:
		return fmt.Sprintf("Good attempt, %s! This trade improves one student without hurting the other.", player)
	case domain.OutcomeHarmful:
		return fmt.Sprintf("Careful, %s! This trade makes one student worse off.", player)
	case domain.OutcomeNoChange:
		return fmt.Sprintf("Nice try, %s, but no change in utility for either student.", player)
	default:
		return fmt.Sprintf("Oops, %s! Nobody gains from this trade and someone is worse off. Try again!", player)
	}
}

// Guidance turns a rejected proposal into a hint for the player. Errors that
// are not trade validation failures are returned verbatim.
func Guidance(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrAlreadyEfficient) {
		return "No beneficial trade is left within reach. The allocation is Pareto efficient."
	}

	tradeErr, ok := domain.AsTradeError(err)
	if !ok {
		return err.Error()
	}

	switch tradeErr.Kind {
	case domain.TradeErrorEmpty:
		return "Both students need to exchange something! Enter amounts for at least one student to give."
	case domain.TradeErrorAmount:
		return "Trade amounts cannot be negative."
	case domain.TradeErrorInsufficient:
		return fmt.Sprintf("Student %s only has %d %s. Try a smaller amount!", tradeErr.Student, tradeErr.Available, tradeErr.Good.Unit())
	default:
		return tradeErr.Error()
	}
}
