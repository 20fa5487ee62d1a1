package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOMLCatalogServesDefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	catalog, err := NewTOMLCatalog(filepath.Join(t.TempDir(), "scenarios.toml"))
	require.NoError(t, err)

	scenarios, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScenarios(), scenarios)

	scenario, err := catalog.GetByID(context.Background(), "equal-split")
	require.NoError(t, err)
	assert.Equal(t, domain.Holdings{Pizza: 4, Soda: 4}, scenario.InitialA)
}

func TestTOMLCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "scenarios.toml")
	catalog, err := NewTOMLCatalog(path)
	require.NoError(t, err)

	custom := []domain.Scenario{
		{ID: "lopsided", Name: "Lopsided", Description: "A holds nearly everything", InitialA: domain.Holdings{Pizza: 7, Soda: 7}, InitialB: domain.Holdings{Pizza: 1, Soda: 1}},
		{ID: "mirror", Name: "Mirror", InitialA: domain.Holdings{Pizza: 2, Soda: 6}, InitialB: domain.Holdings{Pizza: 6, Soda: 2}},
	}
	require.NoError(t, catalog.Save(context.Background(), custom, false))

	got, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestTOMLCatalogSaveRefusesToOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	catalog, err := NewTOMLCatalog(path)
	require.NoError(t, err)

	require.NoError(t, catalog.Save(context.Background(), domain.DefaultScenarios(), false))
	err = catalog.Save(context.Background(), domain.DefaultScenarios(), false)
	require.ErrorIs(t, err, ErrCatalogExists)

	require.NoError(t, catalog.Save(context.Background(), domain.DefaultScenarios()[:1], true))
	got, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTOMLCatalogSaveRejectsInvalidScenarios(t *testing.T) {
	t.Parallel()

	catalog, err := NewTOMLCatalog(filepath.Join(t.TempDir(), "scenarios.toml"))
	require.NoError(t, err)

	err = catalog.Save(context.Background(), []domain.Scenario{{ID: "x"}}, false)
	require.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestTOMLCatalogReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"[[scenarios]]",
		"id = \"picnic\"",
		"name = \"Picnic\"",
		"",
		"[scenarios.a]",
		"pizza = 5",
		"soda = 0",
		"",
		"[scenarios.b]",
		"pizza = 0",
		"soda = 5",
		"",
	}, "\n")), 0o600))

	catalog, err := NewTOMLCatalog(path)
	require.NoError(t, err)

	scenario, err := catalog.GetByID(context.Background(), "picnic")
	require.NoError(t, err)
	assert.Equal(t, domain.Scenario{
		ID:       "picnic",
		Name:     "Picnic",
		InitialA: domain.Holdings{Pizza: 5},
		InitialB: domain.Holdings{Soda: 5},
	}, scenario)

	_, err = catalog.GetByID(context.Background(), "default")
	require.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestTOMLCatalogRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	catalog, err := NewTOMLCatalog(path)
	require.NoError(t, err)

	_, err = catalog.List(context.Background())
	assert.ErrorContains(t, err, "unsupported scenarios schema version 2")
}

func TestTOMLCatalogRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[scenarios]\n"), 0o600))

	catalog, err := NewTOMLCatalog(path)
	require.NoError(t, err)

	_, err = catalog.List(context.Background())
	assert.ErrorContains(t, err, "decode scenarios file")
}

func TestTOMLCatalogHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	catalog, err := NewTOMLCatalog(filepath.Join(t.TempDir(), "scenarios.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = catalog.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestYAMLCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: 1
scenarios:
  - id: dorm
    name: Dorm Room
    description: Late night snacks
    a: {pizza: 3, soda: 5}
    b: {pizza: 5, soda: 3}
  - id: dup-free
    name: Second
    a: {pizza: 0, soda: 0}
    b: {pizza: 8, soda: 8}
`), 0o600))

	catalog, err := Open(path)
	require.NoError(t, err)
	require.IsType(t, &YAMLCatalog{}, catalog)

	scenarios, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "Late night snacks", scenarios[0].Description)

	scenario, err := catalog.GetByID(context.Background(), "dup-free")
	require.NoError(t, err)
	assert.Equal(t, domain.Holdings{Pizza: 8, Soda: 8}, scenario.InitialB)
}

func TestYAMLCatalogRequiresFile(t *testing.T) {
	t.Parallel()

	catalog, err := NewYAMLCatalog(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	_, err = catalog.List(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLCatalogRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.yml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - {id: a, name: One}
  - {id: a, name: Two}
`), 0o600))

	catalog, err := NewYAMLCatalog(path)
	require.NoError(t, err)

	_, err = catalog.List(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestOpenDefaultsToTOML(t *testing.T) {
	t.Parallel()

	catalog, err := Open(filepath.Join(t.TempDir(), "scenarios"))
	require.NoError(t, err)
	assert.IsType(t, &TOMLCatalog{}, catalog)

	_, err = Open("")
	assert.ErrorContains(t, err, "scenarios path is empty")
}
