package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTrade            = errors.New("empty trade")
	ErrInvalidAmount         = errors.New("invalid trade amount")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrUnknownStudent        = errors.New("unknown student")
	ErrInvalidWeights        = errors.New("utility weights must be positive")
	ErrInvalidScenario       = errors.New("invalid scenario")
	ErrScenarioNotFound      = errors.New("scenario not found")
	ErrInvalidPlayerName     = errors.New("invalid player name")
	ErrMalformedBarter       = errors.New("malformed barter")
)

type TradeErrorKind string

const (
	TradeErrorEmpty        TradeErrorKind = "empty_trade"
	TradeErrorAmount       TradeErrorKind = "invalid_amount"
	TradeErrorInsufficient TradeErrorKind = "insufficient_resources"
)

// TradeError is the structured result of a failed feasibility check. Good,
// Requested and Available are set for amount and insufficiency failures.
type TradeError struct {
	Kind      TradeErrorKind
	Student   StudentID
	Good      Good
	Requested int
	Available int
}

func (e *TradeError) Error() string {
	switch e.Kind {
	case TradeErrorEmpty:
		return "trade moves nothing: at least one student must give something"
	case TradeErrorAmount:
		return fmt.Sprintf("trade amounts cannot be negative (student %s, %s %d)", e.Student, e.Good, e.Requested)
	case TradeErrorInsufficient:
		return fmt.Sprintf("student %s does not have enough %s: has %d, gives %d", e.Student, e.Good, e.Available, e.Requested)
	default:
		return string(e.Kind)
	}
}

func (e *TradeError) Is(target error) bool {
	switch e.Kind {
	case TradeErrorEmpty:
		return target == ErrEmptyTrade
	case TradeErrorAmount:
		return target == ErrInvalidAmount
	case TradeErrorInsufficient:
		return target == ErrInsufficientResources
	default:
		return false
	}
}

// AsTradeError unwraps err into a *TradeError when one is present.
func AsTradeError(err error) (*TradeError, bool) {
	var tradeErr *TradeError
	if errors.As(err, &tradeErr) {
		return tradeErr, true
	}

	return nil, false
}
