package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/bnema/pareto-trade/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	scenariosFileMode = 0o600
	scenariosDirMode  = 0o700
	tempFilePattern   = ".scenarios-*.toml.tmp"
)

var ErrCatalogExists = errors.New("scenario catalog already exists")

// TOMLCatalog reads scenarios from a versioned TOML file. When the file does
// not exist the built-in scenarios are served instead.
type TOMLCatalog struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ScenarioCatalog = (*TOMLCatalog)(nil)

func NewTOMLCatalog(path string) (*TOMLCatalog, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &TOMLCatalog{path: normalized, mu: lockForPath(normalized)}, nil
}

func (c *TOMLCatalog) Path() string {
	return c.path
}

func (c *TOMLCatalog) List(ctx context.Context) ([]domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.read()
}

func (c *TOMLCatalog) GetByID(ctx context.Context, id domain.ScenarioID) (domain.Scenario, error) {
	scenarios, err := c.List(ctx)
	if err != nil {
		return domain.Scenario{}, err
	}

	return findByID(scenarios, id)
}

// Save writes scenarios to the catalog file, replacing it atomically. It
// refuses to overwrite an existing file unless overwrite is set.
func (c *TOMLCatalog) Save(ctx context.Context, scenarios []domain.Scenario, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateScenarios(scenarios); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !overwrite {
		if _, err := os.Stat(c.path); err == nil {
			return fmt.Errorf("%w: %s", ErrCatalogExists, c.path)
		}
	}

	return c.write(toSchema(scenarios))
}

func (c *TOMLCatalog) read() ([]domain.Scenario, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultScenarios(), nil
		}
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scenarios file: %w", err)
	}
	file.applyDefaults()

	scenarios, err := fromSchema(file)
	if err != nil {
		return nil, fmt.Errorf("load scenarios file: %w", err)
	}

	return scenarios, nil
}

func (c *TOMLCatalog) write(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(c.path), scenariosDirMode); err != nil {
		return fmt.Errorf("create scenarios directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode scenarios file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(c.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp scenarios file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write temp scenarios file: %w", err), tempFile.Close())
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp scenarios file: %w", err)
	}

	if err := os.Rename(tempName, c.path); err != nil {
		return fmt.Errorf("replace scenarios file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(c.path, scenariosFileMode); err != nil {
		return fmt.Errorf("chmod scenarios file: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("scenarios path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve scenarios path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
