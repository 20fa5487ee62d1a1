package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStudent(t *testing.T, id StudentID, pizza, soda int, weights Weights) Student {
	t.Helper()

	s, err := NewStudent(id, Holdings{Pizza: pizza, Soda: soda}, weights)
	require.NoError(t, err)
	return s
}

func TestUtilityIsWeightedSum(t *testing.T) {
	t.Parallel()

	a := mustStudent(t, StudentA, 6, 2, DefaultWeightsA)
	b := mustStudent(t, StudentB, 2, 6, DefaultWeightsB)

	assert.Equal(t, 20, Utility(a))
	assert.Equal(t, 20, Utility(b))
	assert.Equal(t, Utility(a), a.Utility())
}

func TestUtilityDependsOnlyOnHoldingsAndWeights(t *testing.T) {
	t.Parallel()

	one := Student{ID: StudentA, Name: "one", Holdings: Holdings{Pizza: 3, Soda: 5}, Weights: Weights{Pizza: 2, Soda: 7}}
	two := Student{ID: StudentB, Name: "two", Holdings: Holdings{Pizza: 3, Soda: 5}, Weights: Weights{Pizza: 2, Soda: 7}}

	assert.Equal(t, Utility(one), Utility(two))
	assert.Equal(t, 41, Utility(one))
}

func TestUtilityOfEmptyHoldingsIsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Utility(Student{Weights: DefaultWeightsA}))
}

func TestNewStudentValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       StudentID
		holdings Holdings
		weights  Weights
		wantErr  error
		wantText string
	}{
		{name: "valid", id: StudentA, holdings: Holdings{Pizza: 1}, weights: DefaultWeightsA},
		{name: "unknown id", id: "C", weights: DefaultWeightsA, wantErr: ErrUnknownStudent},
		{name: "negative holdings", id: StudentB, holdings: Holdings{Soda: -1}, weights: DefaultWeightsB, wantText: "must not be negative"},
		{name: "zero weight", id: StudentA, weights: Weights{Pizza: 0, Soda: 1}, wantErr: ErrInvalidWeights},
		{name: "negative weight", id: StudentA, weights: Weights{Pizza: 1, Soda: -2}, wantErr: ErrInvalidWeights},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewStudent(tc.id, tc.holdings, tc.weights)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantText != "":
				assert.ErrorContains(t, err, tc.wantText)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Student A", s.Name)
				assert.Equal(t, tc.weights, s.Weights)
			}
		})
	}
}

func TestWithHoldingsKeepsWeights(t *testing.T) {
	t.Parallel()

	a := mustStudent(t, StudentA, 6, 2, DefaultWeightsA)
	moved := a.WithHoldings(Holdings{Pizza: 8})

	assert.Equal(t, DefaultWeightsA, moved.Weights)
	assert.Equal(t, Holdings{Pizza: 8}, moved.Holdings)
	assert.Equal(t, Holdings{Pizza: 6, Soda: 2}, a.Holdings)
}

func TestGoodUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pizza slices", GoodPizza.Unit())
	assert.Equal(t, "soda cans", GoodSoda.Unit())
	assert.Equal(t, "cookies", Good("cookies").Unit())
}

func TestNormalizePlayerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "trimmed", input: "  Ada  ", want: "Ada"},
		{name: "empty", input: "   ", wantErr: "please enter your name"},
		{name: "too short", input: " A ", wantErr: "at least 2 characters"},
		{name: "multibyte", input: "Zoë", want: "Zoë"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizePlayerName(tc.input)
			if tc.wantErr != "" {
				assert.ErrorIs(t, err, ErrInvalidPlayerName)
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                             string
		beforeA, beforeB, afterA, afterB int
		want                             Outcome
	}{
		{name: "both better", beforeA: 20, beforeB: 20, afterA: 24, afterB: 24, want: OutcomeParetoImprovement},
		{name: "one better other same", beforeA: 20, beforeB: 20, afterA: 21, afterB: 20, want: OutcomeWeakImprovement},
		{name: "one better other worse", beforeA: 20, beforeB: 20, afterA: 23, afterB: 19, want: OutcomeHarmful},
		{name: "unchanged", beforeA: 20, beforeB: 20, afterA: 20, afterB: 20, want: OutcomeNoChange},
		{name: "both worse", beforeA: 20, beforeB: 20, afterA: 18, afterB: 17, want: OutcomeLoss},
		{name: "one worse other same", beforeA: 20, beforeB: 20, afterA: 20, afterB: 17, want: OutcomeLoss},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ClassifyOutcome(tc.beforeA, tc.beforeB, tc.afterA, tc.afterB))
		})
	}
}
