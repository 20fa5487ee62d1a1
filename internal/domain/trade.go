package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Trade moves Pizza and Soda from one student to the other. Amounts are
// signed: a negative amount means the real flow runs To -> From.
type Trade struct {
	From  StudentID
	To    StudentID
	Pizza int
	Soda  int
}

func (t Trade) Amounts() Holdings {
	return Holdings{Pizza: t.Pizza, Soda: t.Soda}
}

// Barter is a two-sided proposal: what A gives to B and what B gives to A.
type Barter struct {
	A Holdings
	B Holdings
}

func (b Barter) IsEmpty() bool {
	return b.A.IsZero() && b.B.IsZero()
}

// Directions splits the barter into the A->B and B->A one-way trades that are
// validated independently.
func (b Barter) Directions() (Trade, Trade) {
	aToB := Trade{From: StudentA, To: StudentB, Pizza: b.A.Pizza, Soda: b.A.Soda}
	bToA := Trade{From: StudentB, To: StudentA, Pizza: b.B.Pizza, Soda: b.B.Soda}
	return aToB, bToA
}

// Net collapses the barter into a single A->B trade of A's gives minus B's gives.
func (b Barter) Net() Trade {
	return Trade{
		From:  StudentA,
		To:    StudentB,
		Pizza: b.A.Pizza - b.B.Pizza,
		Soda:  b.A.Soda - b.B.Soda,
	}
}

// BarterFromNet expands a net trade back into the one-way gives that produce
// it, with each good given by exactly one side.
func BarterFromNet(t Trade) Barter {
	amounts := t.Amounts()
	if t.From == StudentB && t.To == StudentA {
		amounts = Holdings{Pizza: -t.Pizza, Soda: -t.Soda}
	}

	var barter Barter
	if amounts.Pizza >= 0 {
		barter.A.Pizza = amounts.Pizza
	} else {
		barter.B.Pizza = -amounts.Pizza
	}
	if amounts.Soda >= 0 {
		barter.A.Soda = amounts.Soda
	} else {
		barter.B.Soda = -amounts.Soda
	}

	return barter
}

// ValidateTrade checks that proposer can give what t moves. It only looks at
// the proposer's holdings; a two-sided barter is validated by calling it once
// per direction with the roles swapped.
func ValidateTrade(proposer, _ Student, t Trade) error {
	if t.Pizza < 0 {
		return &TradeError{Kind: TradeErrorAmount, Student: proposer.ID, Good: GoodPizza, Requested: t.Pizza}
	}
	if t.Soda < 0 {
		return &TradeError{Kind: TradeErrorAmount, Student: proposer.ID, Good: GoodSoda, Requested: t.Soda}
	}

	for _, good := range []Good{GoodPizza, GoodSoda} {
		requested := t.Amounts().Amount(good)
		available := proposer.Holdings.Amount(good)
		if available < requested {
			return &TradeError{
				Kind:      TradeErrorInsufficient,
				Student:   proposer.ID,
				Good:      good,
				Requested: requested,
				Available: available,
			}
		}
	}

	return nil
}

// ValidateBarter runs the full pre-execution check in order: the empty-trade
// precondition, then A->B against A, then B->A against B.
func ValidateBarter(a, b Student, barter Barter) error {
	if barter.IsEmpty() {
		return &TradeError{Kind: TradeErrorEmpty}
	}

	aToB, bToA := barter.Directions()
	if err := ValidateTrade(a, b, aToB); err != nil {
		return err
	}
	if err := ValidateTrade(b, a, bToA); err != nil {
		return err
	}

	return nil
}

// ExecuteTrade applies t to a and b and returns the new pair.
//
// It performs no bounds checking: t must already have passed validation or
// holdings can go negative.
func ExecuteTrade(a, b Student, t Trade) (Student, Student) {
	moved := t.Amounts()

	switch {
	case t.From == StudentA && t.To == StudentB:
		a.Holdings = a.Holdings.Sub(moved)
		b.Holdings = b.Holdings.Add(moved)
	case t.From == StudentB && t.To == StudentA:
		b.Holdings = b.Holdings.Sub(moved)
		a.Holdings = a.Holdings.Add(moved)
	}

	return a, b
}

// ParseBarter reads the four amounts A pizza, A soda, B pizza, B soda in that
// order. Amounts are not validated beyond being whole numbers.
func ParseBarter(fields []string) (Barter, error) {
	if len(fields) != 4 {
		return Barter{}, fmt.Errorf("%w: need 4 amounts, got %d", ErrMalformedBarter, len(fields))
	}

	amounts := make([]int, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Barter{}, fmt.Errorf("%w: %q is not a whole number", ErrMalformedBarter, field)
		}
		amounts[i] = value
	}

	return Barter{
		A: Holdings{Pizza: amounts[0], Soda: amounts[1]},
		B: Holdings{Pizza: amounts[2], Soda: amounts[3]},
	}, nil
}
