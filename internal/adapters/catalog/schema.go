package catalog

import (
	"fmt"

	"github.com/bnema/pareto-trade/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version" yaml:"version"`
	Scenarios []scenarioSchema `toml:"scenarios" yaml:"scenarios"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported scenarios schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type scenarioSchema struct {
	ID          string         `toml:"id" yaml:"id"`
	Name        string         `toml:"name" yaml:"name"`
	Description string         `toml:"description,omitempty" yaml:"description,omitempty"`
	A           holdingsSchema `toml:"a" yaml:"a"`
	B           holdingsSchema `toml:"b" yaml:"b"`
}

type holdingsSchema struct {
	Pizza int `toml:"pizza" yaml:"pizza"`
	Soda  int `toml:"soda" yaml:"soda"`
}

func toSchema(scenarios []domain.Scenario) fileSchema {
	file := fileSchema{
		Version:   currentSchemaVersion,
		Scenarios: make([]scenarioSchema, 0, len(scenarios)),
	}
	for _, scenario := range scenarios {
		file.Scenarios = append(file.Scenarios, scenarioSchema{
			ID:          string(scenario.ID),
			Name:        scenario.Name,
			Description: scenario.Description,
			A:           holdingsSchema{Pizza: scenario.InitialA.Pizza, Soda: scenario.InitialA.Soda},
			B:           holdingsSchema{Pizza: scenario.InitialB.Pizza, Soda: scenario.InitialB.Soda},
		})
	}

	return file
}

// fromSchema converts and validates the decoded file.
func fromSchema(file fileSchema) ([]domain.Scenario, error) {
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	scenarios := make([]domain.Scenario, 0, len(file.Scenarios))
	for _, entry := range file.Scenarios {
		scenarios = append(scenarios, domain.Scenario{
			ID:          domain.ScenarioID(entry.ID),
			Name:        entry.Name,
			Description: entry.Description,
			InitialA:    domain.Holdings{Pizza: entry.A.Pizza, Soda: entry.A.Soda},
			InitialB:    domain.Holdings{Pizza: entry.B.Pizza, Soda: entry.B.Soda},
		})
	}

	if err := domain.ValidateScenarios(scenarios); err != nil {
		return nil, err
	}

	return scenarios, nil
}

func findByID(scenarios []domain.Scenario, id domain.ScenarioID) (domain.Scenario, error) {
	for _, scenario := range scenarios {
		if scenario.ID == id {
			return scenario, nil
		}
	}

	return domain.Scenario{}, fmt.Errorf("%w: %q", domain.ErrScenarioNotFound, id)
}
