package domain

import (
	"fmt"
	"strings"
)

type ScenarioID string

// Scenario is a named starting allocation. It is template data and is never
// mutated by play.
type Scenario struct {
	ID          ScenarioID
	Name        string
	Description string
	InitialA    Holdings
	InitialB    Holdings
}

const DefaultScenarioID ScenarioID = "default"

func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			ID:          DefaultScenarioID,
			Name:        "Default Scenario",
			Description: "Both students start with equal utility but inefficient allocation",
			InitialA:    Holdings{Pizza: 6, Soda: 2},
			InitialB:    Holdings{Pizza: 2, Soda: 6},
		},
		{
			ID:          "extreme-mismatch",
			Name:        "Extreme Mismatch",
			Description: "Students have resources they don't prefer",
			InitialA:    Holdings{Pizza: 1, Soda: 7},
			InitialB:    Holdings{Pizza: 7, Soda: 1},
		},
		{
			ID:          "already-efficient",
			Name:        "Already Efficient",
			Description: "Starting from a Pareto efficient allocation",
			InitialA:    Holdings{Pizza: 7, Soda: 1},
			InitialB:    Holdings{Pizza: 1, Soda: 7},
		},
		{
			ID:          "equal-split",
			Name:        "Equal Split",
			Description: "Both students start with equal amounts",
			InitialA:    Holdings{Pizza: 4, Soda: 4},
			InitialB:    Holdings{Pizza: 4, Soda: 4},
		},
	}
}

func (s Scenario) Validate() error {
	if strings.TrimSpace(string(s.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidScenario)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidScenario, s.ID)
	}
	if err := s.InitialA.Validate(); err != nil {
		return fmt.Errorf("%w: %s: student A: %v", ErrInvalidScenario, s.ID, err)
	}
	if err := s.InitialB.Validate(); err != nil {
		return fmt.Errorf("%w: %s: student B: %v", ErrInvalidScenario, s.ID, err)
	}

	return nil
}

// Totals is the per-good amount conserved by every trade in the scenario.
func (s Scenario) Totals() Holdings {
	return s.InitialA.Add(s.InitialB)
}

// Students builds the starting pair for the scenario with the given weights.
func (s Scenario) Students(weightsA, weightsB Weights) (Student, Student, error) {
	a, err := NewStudent(StudentA, s.InitialA, weightsA)
	if err != nil {
		return Student{}, Student{}, fmt.Errorf("student A: %w", err)
	}
	b, err := NewStudent(StudentB, s.InitialB, weightsB)
	if err != nil {
		return Student{}, Student{}, fmt.Errorf("student B: %w", err)
	}

	return a, b, nil
}

// ValidateScenarios checks every scenario and rejects duplicate IDs.
func ValidateScenarios(scenarios []Scenario) error {
	seen := make(map[ScenarioID]struct{}, len(scenarios))
	for _, scenario := range scenarios {
		if err := scenario.Validate(); err != nil {
			return err
		}
		if _, ok := seen[scenario.ID]; ok {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidScenario, scenario.ID)
		}
		seen[scenario.ID] = struct{}{}
	}

	return nil
}
