package wbs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lifewbs/lifewbs/internal/model"
	"github.com/lifewbs/lifewbs/internal/valuation"
)

var (
	// ErrDuplicateID marks an id already present in the ledger.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrDanglingParent marks a parent reference to no known row.
	ErrDanglingParent = errors.New("dangling parent")
	// ErrCycleDetected marks a parent loop, reachable only via manual edits.
	ErrCycleDetected = errors.New("cycle detected")
	// ErrUnknownID marks a lookup for an id not in the ledger.
	ErrUnknownID = errors.New("unknown id")
)

// Ledger is the in-memory WBS row store. Rows keep their append order for
// serialization; byID and children give O(1) lookups. Hierarchical ids sort
// wrong as strings ("1.10" before "1.2"), so append order is the stable
// on-disk order and numeric ordering is a display concern only.
type Ledger struct {
	rows     []model.Row
	byID     map[string]int      // id -> index into rows
	children map[string][]string // parent id -> ordered child ids
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		byID:     make(map[string]int),
		children: make(map[string][]string),
	}
}

// Read parses a full ledger from r. The complete row set is validated before
// any row is accepted: a dangling parent rejects the whole load even when the
// referencing row appears before its parent in the file.
func Read(r io.Reader) (*Ledger, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(rows))
	for _, row := range rows {
		if ids[row.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, row.ID)
		}
		ids[row.ID] = true
	}
	for _, row := range rows {
		if row.Parent != model.RootParent && !ids[row.Parent] {
			return nil, fmt.Errorf("%w: row %s references %s", ErrDanglingParent, row.ID, row.Parent)
		}
	}

	l := New()
	for _, row := range rows {
		l.insert(row)
	}
	return l, nil
}

// Load reads the ledger CSV at path.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return l, nil
}

// Write serializes the ledger to w in append order.
func (l *Ledger) Write(w io.Writer) error {
	return WriteRows(w, l.rows)
}

// Save rewrites the full ledger CSV at path. There is no partial update: the
// file is replaced whole, so a round-trip preserves content and row order.
func (l *Ledger) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}
	defer f.Close()

	if err := l.Write(f); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	return nil
}

// AppendRow validates and inserts a row. On failure the ledger is unchanged.
func (l *Ledger) AppendRow(row model.Row) error {
	if _, ok := l.byID[row.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, row.ID)
	}
	if row.Parent != model.RootParent {
		if _, ok := l.byID[row.Parent]; !ok {
			return fmt.Errorf("%w: row %s references %s", ErrDanglingParent, row.ID, row.Parent)
		}
	}
	l.insert(row)
	return nil
}

func (l *Ledger) insert(row model.Row) {
	l.byID[row.ID] = len(l.rows)
	l.rows = append(l.rows, row)
	l.children[row.Parent] = append(l.children[row.Parent], row.ID)
}

// Get returns a row by id.
func (l *Ledger) Get(id string) (model.Row, bool) {
	idx, ok := l.byID[id]
	if !ok {
		return model.Row{}, false
	}
	return l.rows[idx], true
}

// Len returns the number of rows.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the rows in append order.
func (l *Ledger) Rows() []model.Row {
	out := make([]model.Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// SortedRows returns the rows in hierarchical numeric order (1, 1.2, 1.10,
// 2, ...) for display. The on-disk order stays append order.
func (l *Ledger) SortedRows() []model.Row {
	out := l.Rows()
	sort.SliceStable(out, func(i, j int) bool {
		return lessKey(idKey(out[i].ID), idKey(out[j].ID))
	})
	return out
}

func lessKey(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Children returns the ordered child ids of id.
func (l *Ledger) Children(id string) []string {
	kids := l.children[id]
	out := make([]string, len(kids))
	copy(out, kids)
	return out
}

// NextChildID returns "<parentID>.N" where N is one past the child count.
func (l *Ledger) NextChildID(parentID string) string {
	return fmt.Sprintf("%s.%d", parentID, len(l.children[parentID])+1)
}

// AggregatePL returns a row's own PL plus the rollup of every descendant.
// The rollup is computed at read time, never stored. Traversal uses an
// explicit stack rather than recursion, and a revisited node fails with
// ErrCycleDetected so a hand-edited parent loop cannot hang the caller.
func (l *Ledger) AggregatePL(id string) (int64, error) {
	if _, ok := l.byID[id]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownID, id)
	}

	var total int64
	seen := make(map[string]bool)
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			return 0, fmt.Errorf("%w: at %s", ErrCycleDetected, cur)
		}
		seen[cur] = true
		total += l.rows[l.byID[cur]].PL
		stack = append(stack, l.children[cur]...)
	}
	return total, nil
}

// NewMonthlyRow composes and appends a month-end judgment row under parentID.
// The id is the next child slot, the status label and PL come from the
// action, and the task is prefixed with the target month.
func (l *Ledger) NewMonthlyRow(parentID, yearMonth string, action model.Action, task, memo string) (model.Row, error) {
	pl, err := valuation.MonthlyDelta(action)
	if err != nil {
		return model.Row{}, err
	}

	row := model.Row{
		ID:     l.NextChildID(parentID),
		Parent: parentID,
		Task:   strings.TrimSpace(yearMonth + " " + task),
		Status: action.Label(),
		PL:     pl,
		Memo:   memo,
	}
	if row.Memo == "" {
		row.Memo = yearMonth + " judgment"
	}

	if err := l.AppendRow(row); err != nil {
		return model.Row{}, err
	}
	return row, nil
}

// UpdateRow rewrites the task, action, and memo of an existing row in place,
// re-deriving PL from the action. Appending an offsetting row is the
// audit-safe way to correct history; this exists for the presentation
// layer's in-place edit.
func (l *Ledger) UpdateRow(id, task string, action model.Action, memo string) error {
	idx, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownID, id)
	}
	pl, err := valuation.MonthlyDelta(action)
	if err != nil {
		return err
	}

	row := &l.rows[idx]
	row.Task = task
	row.Status = action.Label()
	row.PL = pl
	row.Memo = memo
	return nil
}
