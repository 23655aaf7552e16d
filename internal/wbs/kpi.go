package wbs

import (
	"github.com/shopspring/decimal"

	"github.com/lifewbs/lifewbs/internal/valuation"
)

// HealthBand buckets the current asset for the dashboard gauge.
type HealthBand string

const (
	HealthBankrupt HealthBand = "Bankrupt"
	HealthCritical HealthBand = "Critical"
	HealthCaution  HealthBand = "Caution"
	HealthHealthy  HealthBand = "Healthy"
)

const (
	criticalBelow = 3_000_000_000
	cautionBelow  = 5_000_000_000
)

// KPIs summarizes the ledger for the dashboard.
type KPIs struct {
	CurrentAsset int64 // sum of every row's PL
	TotalLoss    int64 // sum of negative-PL rows, kept negative
	ActionCount  int   // rows booked under any fiscal-year phase
	GaugePercent decimal.Decimal
	Health       HealthBand
}

// KPIs computes the dashboard figures over every row. The gauge is the share
// of the initial capital still on the books, clamped to [0, 100]; the
// division runs on decimals so the percentage is exact, not a float.
func (l *Ledger) KPIs() KPIs {
	var k KPIs

	phases := make(map[string]bool)
	for _, id := range l.PhaseIDs() {
		phases[id] = true
	}

	for _, row := range l.rows {
		k.CurrentAsset += row.PL
		if row.PL < 0 {
			k.TotalLoss += row.PL
		}
		if phases[row.Parent] {
			k.ActionCount++
		}
	}

	hundred := decimal.NewFromInt(100)
	pct := decimal.NewFromInt(k.CurrentAsset).
		Div(decimal.NewFromInt(valuation.InitialCapital)).
		Mul(hundred)
	switch {
	case pct.IsNegative():
		pct = decimal.Zero
	case pct.GreaterThan(hundred):
		pct = hundred
	}
	k.GaugePercent = pct

	switch {
	case k.CurrentAsset < 0:
		k.Health = HealthBankrupt
	case k.CurrentAsset < criticalBelow:
		k.Health = HealthCritical
	case k.CurrentAsset < cautionBelow:
		k.Health = HealthCaution
	default:
		k.Health = HealthHealthy
	}
	return k
}
