package wbs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lifewbs/lifewbs/internal/model"
	"github.com/lifewbs/lifewbs/internal/valuation"
)

// projectID is the root project row; everything else under root is a
// fiscal-year phase.
const projectID = "1"

// Genesis builds the opening ledger: the life project row with its valuation
// breakdown underneath, and the first fiscal-year phase. The project subtree
// aggregates to the computed initial asset.
func Genesis(age, wins int, winDetails []string, year int) (*Ledger, error) {
	b, err := valuation.Valuate(age, wins)
	if err != nil {
		return nil, err
	}

	rows := []model.Row{
		{
			ID:     projectID,
			Parent: model.RootParent,
			Task:   "Project: Life",
			Status: model.StatusInProgress,
			PL:     valuation.InitialCapital,
			Memo:   "initial capital",
		},
		{
			ID:     "1.1",
			Parent: projectID,
			Task:   fmt.Sprintf("Time cost (age 0-%d)", age),
			Status: model.StatusLost,
			PL:     -b.TimeCost,
			Memo:   fmt.Sprintf("%d years x ¥120M", age),
		},
	}

	// Goodwill is only booked when there is a past record to book.
	if wins > 0 {
		rows = append(rows, model.Row{
			ID:     "1.2",
			Parent: projectID,
			Task:   "Due diligence (past record)",
			Status: model.StatusBonus,
			PL:     b.Goodwill,
			Memo:   fmt.Sprintf("%d challenges x ¥360M", wins),
		})
		// Detail rows carry PL 0: they itemize, not add.
		for i := 1; i <= wins; i++ {
			detail := ""
			if i-1 < len(winDetails) {
				detail = strings.TrimSpace(winDetails[i-1])
			}
			if detail == "" {
				detail = fmt.Sprintf("Challenge #%d", i)
			}
			rows = append(rows, model.Row{
				ID:     fmt.Sprintf("1.2.%d", i),
				Parent: "1.2",
				Task:   detail,
				Status: model.StatusBonus,
				PL:     0,
				Memo:   fmt.Sprintf("challenge #%d", i),
			})
		}
	}

	rows = append(rows, phaseRow(strconv.Itoa(nextTopLevel(rows)), year))

	l := New()
	for _, row := range rows {
		if err := l.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// PhaseIDs returns the fiscal-year phase ids: root children other than the
// project row, in append order.
func (l *Ledger) PhaseIDs() []string {
	var ids []string
	for _, id := range l.children[model.RootParent] {
		if id != projectID {
			ids = append(ids, id)
		}
	}
	return ids
}

// FindOrCreatePhase returns the id of the FY<year> phase, appending a new
// root-level phase with the next top-level number when none exists.
func (l *Ledger) FindOrCreatePhase(year int) (string, error) {
	name := phaseName(year)
	for _, row := range l.rows {
		if row.Parent == model.RootParent && row.Task == name {
			return row.ID, nil
		}
	}

	max := 0
	for _, id := range l.children[model.RootParent] {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	row := phaseRow(strconv.Itoa(max+1), year)
	if err := l.AppendRow(row); err != nil {
		return "", err
	}
	return row.ID, nil
}

func phaseName(year int) string {
	return fmt.Sprintf("FY%d", year)
}

func phaseRow(id string, year int) model.Row {
	return model.Row{
		ID:     id,
		Parent: model.RootParent,
		Task:   phaseName(year),
		Status: model.StatusInProgress,
		PL:     0,
		Memo:   fmt.Sprintf("fiscal year %d", year),
	}
}

func nextTopLevel(rows []model.Row) int {
	max := 0
	for _, row := range rows {
		if row.Parent != model.RootParent {
			continue
		}
		if n, err := strconv.Atoi(row.ID); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}
