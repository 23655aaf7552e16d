package wbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifewbs/lifewbs/internal/model"
	"github.com/lifewbs/lifewbs/internal/valuation"
)

func TestGenesis_NoWins(t *testing.T) {
	l, err := Genesis(30, 0, nil, 2026)
	require.NoError(t, err)

	var ids []string
	for _, row := range l.Rows() {
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []string{"1", "1.1", "2"}, ids, "no goodwill rows without a past record")

	root, _ := l.Get("1")
	assert.Equal(t, valuation.InitialCapital, root.PL)
	assert.Equal(t, model.StatusInProgress, root.Status)

	timeCost, _ := l.Get("1.1")
	assert.Equal(t, int64(-3_600_000_000), timeCost.PL)
	assert.Equal(t, model.StatusLost, timeCost.Status)

	phase, _ := l.Get("2")
	assert.Equal(t, "FY2026", phase.Task)
	assert.Equal(t, model.RootParent, phase.Parent)
	assert.Equal(t, int64(0), phase.PL)
}

func TestGenesis_SubtreeValuatesToInitialAsset(t *testing.T) {
	for _, tt := range []struct{ age, wins int }{
		{30, 0}, {30, 2}, {90, 0}, {25, 10},
	} {
		l, err := Genesis(tt.age, tt.wins, nil, 2026)
		require.NoError(t, err)

		want, err := valuation.InitialAsset(tt.age, tt.wins)
		require.NoError(t, err)

		got, err := l.AggregatePL("1")
		require.NoError(t, err)
		assert.Equal(t, want, got, "age=%d wins=%d", tt.age, tt.wins)
	}
}

func TestGenesis_WinDetails(t *testing.T) {
	l, err := Genesis(30, 3, []string{"Moved abroad", "  "}, 2026)
	require.NoError(t, err)

	goodwill, ok := l.Get("1.2")
	require.True(t, ok)
	assert.Equal(t, int64(3*360_000_000), goodwill.PL)
	assert.Equal(t, model.StatusBonus, goodwill.Status)

	// Blank and missing details fall back to numbered placeholders, and the
	// detail rows never double-count the goodwill.
	wantTasks := []string{"Moved abroad", "Challenge #2", "Challenge #3"}
	kids := l.Children("1.2")
	require.Len(t, kids, 3)
	for i, id := range kids {
		row, _ := l.Get(id)
		assert.Equal(t, wantTasks[i], row.Task)
		assert.Equal(t, int64(0), row.PL)
	}
}

func TestGenesis_InvalidInput(t *testing.T) {
	_, err := Genesis(-1, 0, nil, 2026)
	require.Error(t, err)
}

func TestPhaseIDs(t *testing.T) {
	l, err := Genesis(30, 0, nil, 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, l.PhaseIDs())

	_, err = l.FindOrCreatePhase(2027)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, l.PhaseIDs())
}

func TestFindOrCreatePhase_Existing(t *testing.T) {
	l, err := Genesis(30, 0, nil, 2026)
	require.NoError(t, err)

	id, err := l.FindOrCreatePhase(2026)
	require.NoError(t, err)
	assert.Equal(t, "2", id)
	assert.Equal(t, 3, l.Len(), "no new row for an existing phase")
}

func TestFindOrCreatePhase_New(t *testing.T) {
	l, err := Genesis(30, 0, nil, 2026)
	require.NoError(t, err)

	id, err := l.FindOrCreatePhase(2027)
	require.NoError(t, err)
	assert.Equal(t, "3", id)

	row, ok := l.Get("3")
	require.True(t, ok)
	assert.Equal(t, "FY2027", row.Task)
	assert.Equal(t, model.RootParent, row.Parent)
}
