package wbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifewbs/lifewbs/internal/model"
)

func TestKPIs_FreshLedger(t *testing.T) {
	l, err := Genesis(30, 0, nil, 2026)
	require.NoError(t, err)

	k := l.KPIs()
	assert.Equal(t, int64(6_400_000_000), k.CurrentAsset)
	assert.Equal(t, int64(-3_600_000_000), k.TotalLoss)
	assert.Equal(t, 0, k.ActionCount)
	assert.Equal(t, "64", k.GaugePercent.StringFixed(0))
	assert.Equal(t, HealthHealthy, k.Health)
}

func TestKPIs_CountsActionsUnderEveryPhase(t *testing.T) {
	l, err := Genesis(30, 0, nil, 2026)
	require.NoError(t, err)

	_, err = l.NewMonthlyRow("2", "2026-01", model.ActionStatusQuo, "m", "")
	require.NoError(t, err)
	phase27, err := l.FindOrCreatePhase(2027)
	require.NoError(t, err)
	_, err = l.NewMonthlyRow(phase27, "2027-01", model.ActionBigWin, "m", "")
	require.NoError(t, err)

	k := l.KPIs()
	assert.Equal(t, 2, k.ActionCount)
	assert.Equal(t, int64(6_400_000_000-10_000_000+50_000_000), k.CurrentAsset)
	// Genesis detail rows don't count; only rows under a phase do.
	assert.Equal(t, int64(-3_610_000_000), k.TotalLoss)
}

func TestKPIs_HealthBands(t *testing.T) {
	tests := []struct {
		asset int64
		want  HealthBand
	}{
		{-1, HealthBankrupt},
		{0, HealthCritical},
		{2_999_999_999, HealthCritical},
		{3_000_000_000, HealthCaution},
		{4_999_999_999, HealthCaution},
		{5_000_000_000, HealthHealthy},
		{10_000_000_000, HealthHealthy},
	}
	for _, tt := range tests {
		l := mustLedger(t, model.Row{ID: "1", Parent: "0", Task: "root", PL: tt.asset})
		assert.Equal(t, tt.want, l.KPIs().Health, "asset=%d", tt.asset)
	}
}

func TestKPIs_GaugeClamped(t *testing.T) {
	// Bankrupt gauges pin at 0, windfalls at 100.
	l := mustLedger(t, model.Row{ID: "1", Parent: "0", Task: "root", PL: -5_000_000_000})
	assert.True(t, l.KPIs().GaugePercent.IsZero())

	l = mustLedger(t, model.Row{ID: "1", Parent: "0", Task: "root", PL: 12_000_000_000})
	assert.Equal(t, "100", l.KPIs().GaugePercent.StringFixed(0))
}
