package model

import "strings"

// RootParent is the sentinel parent ID of top-level rows.
const RootParent = "0"

// Status labels written by generated rows. The Status column is open text:
// unknown labels from hand-edited files round-trip untouched.
const (
	StatusInProgress = "In Progress"
	StatusLost       = "Lost"
	StatusKept       = "Kept"
	StatusBonus      = "Bonus"
)

// Row is a single line item in the WBS ledger CSV.
type Row struct {
	ID     string // dot-delimited hierarchical id, e.g. "2.3"
	Parent string // id of the containing row, or RootParent
	Task   string
	Status string // display label, open set
	PL     int64  // signed whole yen
	Memo   string
}

// Depth returns the nesting depth implied by the row ID (top-level rows = 0).
func (r Row) Depth() int {
	return strings.Count(r.ID, ".")
}
