package application

import (
	"testing"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProposeParetoImprovement(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	result, err := session.Propose(domain.Barter{A: domain.Holdings{Soda: 2}, B: domain.Holdings{Pizza: 2}})
	require.NoError(t, err)

	assert.Equal(t, domain.Trade{From: domain.StudentA, To: domain.StudentB, Pizza: -2, Soda: 2}, result.Trade)
	assert.Equal(t, 20, result.BeforeA)
	assert.Equal(t, 20, result.BeforeB)
	assert.Equal(t, 24, result.AfterA)
	assert.Equal(t, 24, result.AfterB)
	assert.Equal(t, domain.OutcomeParetoImprovement, result.Outcome)
	assert.Contains(t, result.Message, "Excellent work, Ada!")

	a, b := session.Students()
	assert.Equal(t, domain.Holdings{Pizza: 8, Soda: 0}, a.Holdings)
	assert.Equal(t, domain.Holdings{Pizza: 0, Soda: 8}, b.Holdings)
	assert.True(t, session.Status().IsEfficient)
}

func TestSessionRejectedProposalLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		barter  domain.Barter
		wantErr error
	}{
		{name: "empty", barter: domain.Barter{}, wantErr: domain.ErrEmptyTrade},
		{name: "negative", barter: domain.Barter{A: domain.Holdings{Pizza: -1}}, wantErr: domain.ErrInvalidAmount},
		{name: "A lacks pizza", barter: domain.Barter{A: domain.Holdings{Pizza: 10}}, wantErr: domain.ErrInsufficientResources},
		{name: "B lacks pizza", barter: domain.Barter{A: domain.Holdings{Soda: 1}, B: domain.Holdings{Pizza: 3}}, wantErr: domain.ErrInsufficientResources},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			session := startDefaultSession(t)
			before := session.Snapshot()

			_, err := session.Propose(tc.barter)
			require.ErrorIs(t, err, tc.wantErr)

			if diff := cmp.Diff(before, session.Snapshot()); diff != "" {
				t.Fatalf("session changed after rejected proposal (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSessionHistoryIsAppendOnly(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	require.NoError(t, session.Replay([]domain.Barter{
		{A: domain.Holdings{Soda: 1}, B: domain.Holdings{Pizza: 1}},
		{A: domain.Holdings{Pizza: 1}},
	}))

	want := []HistoryEntry{
		{
			Sequence:   1,
			Barter:     domain.Barter{A: domain.Holdings{Soda: 1}, B: domain.Holdings{Pizza: 1}},
			Trade:      domain.Trade{From: domain.StudentA, To: domain.StudentB, Pizza: -1, Soda: 1},
			Outcome:    domain.OutcomeParetoImprovement,
			ExecutedAt: testNow,
		},
		{
			Sequence:   2,
			Barter:     domain.Barter{A: domain.Holdings{Pizza: 1}},
			Trade:      domain.Trade{From: domain.StudentA, To: domain.StudentB, Pizza: 1},
			Outcome:    domain.OutcomeHarmful,
			ExecutedAt: testNow,
		},
	}
	if diff := cmp.Diff(want, session.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	history := session.History()
	history[0].Sequence = 42
	assert.Equal(t, 1, session.History()[0].Sequence, "History returns a copy")
}

func TestSessionReplayReportsFailingMove(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	err := session.Replay([]domain.Barter{
		{A: domain.Holdings{Soda: 2}, B: domain.Holdings{Pizza: 2}},
		{A: domain.Holdings{Soda: 1}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientResources)
	assert.ErrorContains(t, err, "move 2")
	assert.Len(t, session.History(), 1)
}

func TestSessionConservesTotalsAcrossTrades(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	moves := []domain.Barter{
		{A: domain.Holdings{Pizza: 3}, B: domain.Holdings{Soda: 1}},
		{B: domain.Holdings{Pizza: 4, Soda: 2}},
		{A: domain.Holdings{Pizza: 2, Soda: 3}, B: domain.Holdings{Pizza: 1}},
	}
	for _, move := range moves {
		_, err := session.Propose(move)
		require.NoError(t, err)

		a, b := session.Students()
		assert.Equal(t, domain.Holdings{Pizza: 8, Soda: 8}, a.Holdings.Add(b.Holdings))
		assert.NoError(t, a.Holdings.Validate())
		assert.NoError(t, b.Holdings.Validate())
	}
}

func TestSessionApplySuggestion(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	result, err := session.ApplySuggestion()
	require.NoError(t, err)
	assert.Equal(t, domain.Barter{A: domain.Holdings{Soda: 2}, B: domain.Holdings{Pizza: 2}}, result.Barter)
	assert.Equal(t, domain.OutcomeParetoImprovement, result.Outcome)

	_, err = session.ApplySuggestion()
	require.ErrorIs(t, err, ErrAlreadyEfficient)
	assert.Len(t, session.History(), 1)
}

func TestSessionResetRestoresScenario(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)
	_, err := session.ApplySuggestion()
	require.NoError(t, err)

	session.Reset()

	a, b := session.Students()
	assert.Equal(t, domain.Holdings{Pizza: 6, Soda: 2}, a.Holdings)
	assert.Equal(t, domain.Holdings{Pizza: 2, Soda: 6}, b.Holdings)
	assert.Equal(t, domain.DefaultWeightsA, a.Weights)
	assert.Empty(t, session.History())
}

func TestSessionSwitchScenarioRejectsInvalidScenario(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	err := session.SwitchScenario(domain.Scenario{ID: "broken"})
	require.ErrorIs(t, err, domain.ErrInvalidScenario)
	assert.Equal(t, domain.DefaultScenarioID, session.Scenario().ID)
}

func TestSessionSnapshot(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)
	snapshot := session.Snapshot()

	assert.Equal(t, "session-1", snapshot.SessionID)
	assert.Equal(t, "Ada", snapshot.PlayerName)
	assert.Equal(t, 20, snapshot.A.Utility)
	assert.Equal(t, 20, snapshot.B.Utility)
	assert.True(t, snapshot.Status.CanImprove)
	require.NotNil(t, snapshot.Status.SuggestedTrade)
}

func TestOutcomeMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome domain.Outcome
		want    string
	}{
		{outcome: domain.OutcomeParetoImprovement, want: "Excellent work, Ada!"},
		{outcome: domain.OutcomeWeakImprovement, want: "improves one student without hurting the other"},
		{outcome: domain.OutcomeHarmful, want: "makes one student worse off"},
		{outcome: domain.OutcomeNoChange, want: "no change in utility"},
		{outcome: domain.OutcomeLoss, want: "Try again!"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.outcome), func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, OutcomeMessage(tc.outcome, "Ada"), tc.want)
		})
	}
}

func TestGuidance(t *testing.T) {
	t.Parallel()

	session := startDefaultSession(t)

	_, err := session.Propose(domain.Barter{A: domain.Holdings{Pizza: 10}})
	assert.Equal(t, "Student A only has 6 pizza slices. Try a smaller amount!", Guidance(err))

	_, err = session.Propose(domain.Barter{B: domain.Holdings{Soda: 7}})
	assert.Equal(t, "Student B only has 6 soda cans. Try a smaller amount!", Guidance(err))

	_, err = session.Propose(domain.Barter{})
	assert.Contains(t, Guidance(err), "Both students need to exchange something!")

	assert.Contains(t, Guidance(ErrAlreadyEfficient), "Pareto efficient")
	assert.Equal(t, "", Guidance(nil))
}
