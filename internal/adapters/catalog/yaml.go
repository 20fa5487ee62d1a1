package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/bnema/pareto-trade/internal/ports"
	"gopkg.in/yaml.v3"
)

// YAMLCatalog reads scenarios from a YAML file using the same schema as the
// TOML catalog. It is read only and the file must exist.
type YAMLCatalog struct {
	path string
}

var _ ports.ScenarioCatalog = (*YAMLCatalog)(nil)

func NewYAMLCatalog(path string) (*YAMLCatalog, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &YAMLCatalog{path: normalized}, nil
}

func (c *YAMLCatalog) List(ctx context.Context) ([]domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}

	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scenarios file: %w", err)
	}
	file.applyDefaults()

	scenarios, err := fromSchema(file)
	if err != nil {
		return nil, fmt.Errorf("load scenarios file: %w", err)
	}

	return scenarios, nil
}

func (c *YAMLCatalog) GetByID(ctx context.Context, id domain.ScenarioID) (domain.Scenario, error) {
	scenarios, err := c.List(ctx)
	if err != nil {
		return domain.Scenario{}, err
	}

	return findByID(scenarios, id)
}

// Open picks the catalog implementation from the file extension.
func Open(path string) (ports.ScenarioCatalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		yamlCatalog, err := NewYAMLCatalog(path)
		if err != nil {
			return nil, err
		}
		return yamlCatalog, nil
	default:
		tomlCatalog, err := NewTOMLCatalog(path)
		if err != nil {
			return nil, err
		}
		return tomlCatalog, nil
	}
}
