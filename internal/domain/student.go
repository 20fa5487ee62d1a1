package domain

import "fmt"

type StudentID string

const (
	StudentA StudentID = "A"
	StudentB StudentID = "B"
)

func (id StudentID) Valid() bool {
	switch id {
	case StudentA, StudentB:
		return true
	default:
		return false
	}
}

type Good string

const (
	GoodPizza Good = "pizza"
	GoodSoda  Good = "soda"
)

// Unit returns the countable unit used when talking to players.
func (g Good) Unit() string {
	switch g {
	case GoodPizza:
		return "pizza slices"
	case GoodSoda:
		return "soda cans"
	default:
		return string(g)
	}
}

type Holdings struct {
	Pizza int
	Soda  int
}

func (h Holdings) Amount(good Good) int {
	switch good {
	case GoodPizza:
		return h.Pizza
	case GoodSoda:
		return h.Soda
	default:
		return 0
	}
}

func (h Holdings) IsZero() bool {
	return h.Pizza == 0 && h.Soda == 0
}

func (h Holdings) Add(other Holdings) Holdings {
	return Holdings{Pizza: h.Pizza + other.Pizza, Soda: h.Soda + other.Soda}
}

func (h Holdings) Sub(other Holdings) Holdings {
	return Holdings{Pizza: h.Pizza - other.Pizza, Soda: h.Soda - other.Soda}
}

func (h Holdings) Validate() error {
	if h.Pizza < 0 || h.Soda < 0 {
		return fmt.Errorf("holdings must not be negative (pizza %d, soda %d)", h.Pizza, h.Soda)
	}

	return nil
}

// Weights are the per-unit utility of each good. They never change once a
// student has been created.
type Weights struct {
	Pizza int
	Soda  int
}

func (w Weights) Validate() error {
	if w.Pizza <= 0 || w.Soda <= 0 {
		return fmt.Errorf("%w: pizza %d, soda %d", ErrInvalidWeights, w.Pizza, w.Soda)
	}

	return nil
}

var (
	DefaultWeightsA = Weights{Pizza: 3, Soda: 1}
	DefaultWeightsB = Weights{Pizza: 1, Soda: 3}
)

type Student struct {
	ID       StudentID
	Name     string
	Holdings Holdings
	Weights  Weights
}

func NewStudent(id StudentID, holdings Holdings, weights Weights) (Student, error) {
	if !id.Valid() {
		return Student{}, fmt.Errorf("%w: %q", ErrUnknownStudent, id)
	}
	if err := holdings.Validate(); err != nil {
		return Student{}, err
	}
	if err := weights.Validate(); err != nil {
		return Student{}, err
	}

	return Student{
		ID:       id,
		Name:     fmt.Sprintf("Student %s", id),
		Holdings: holdings,
		Weights:  weights,
	}, nil
}

// WithHoldings returns a copy of s holding h. Weights are carried over.
func (s Student) WithHoldings(h Holdings) Student {
	s.Holdings = h
	return s
}

func (s Student) Utility() int {
	return Utility(s)
}

func Utility(s Student) int {
	return s.Weights.Pizza*s.Holdings.Pizza + s.Weights.Soda*s.Holdings.Soda
}
