package wbs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lifewbs/lifewbs/internal/model"
)

// Header is the CSV header for the ledger file.
const Header = "ID,Parent,Task,Status,PL,Memo"

const (
	numFields = 6
	colID     = 0
	colParent = 1
	colTask   = 2
	colStatus = 3
	colPL     = 4
	colMemo   = 5
)

// ErrMalformedRow marks rows missing fields or failing type checks.
var ErrMalformedRow = errors.New("malformed row")

// RowError carries enough context to fix a broken CSV by hand.
type RowError struct {
	Line int    // 1-based CSV line, header is line 1
	ID   string // row id, if one could be read
	Err  error
}

func (e RowError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("row %d (id %s): %v", e.Line, e.ID, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// ReadRows reads all ledger rows from r, preserving file order.
func ReadRows(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	// Field count is checked per row so the error names the row.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []model.Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, RowError{Line: i + 2, ID: recordID(rec), Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes rows to w (including header) in the given order.
func WriteRows(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(row model.Row) []string {
	rec := make([]string, numFields)
	rec[colID] = row.ID
	rec[colParent] = row.Parent
	rec[colTask] = row.Task
	rec[colStatus] = row.Status
	rec[colPL] = strconv.FormatInt(row.PL, 10)
	rec[colMemo] = row.Memo
	return rec
}

// UnmarshalRow converts a CSV record to a Row. The Status label is not
// validated: unknown labels from manual edits are preserved as-is.
func UnmarshalRow(record []string) (model.Row, error) {
	if len(record) != numFields {
		return model.Row{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, numFields, len(record))
	}

	if err := checkID(record[colID]); err != nil {
		return model.Row{}, fmt.Errorf("%w: ID %q: %v", ErrMalformedRow, record[colID], err)
	}
	if record[colParent] != model.RootParent {
		if err := checkID(record[colParent]); err != nil {
			return model.Row{}, fmt.Errorf("%w: Parent %q: %v", ErrMalformedRow, record[colParent], err)
		}
	}

	pl, err := strconv.ParseInt(record[colPL], 10, 64)
	if err != nil {
		return model.Row{}, fmt.Errorf("%w: parsing PL %q: %v", ErrMalformedRow, record[colPL], err)
	}

	return model.Row{
		ID:     record[colID],
		Parent: record[colParent],
		Task:   record[colTask],
		Status: record[colStatus],
		PL:     pl,
		Memo:   record[colMemo],
	}, nil
}

// checkID verifies a dot-delimited hierarchical id like "2.13".
func checkID(id string) error {
	if id == "" {
		return errors.New("empty")
	}
	for _, seg := range strings.Split(id, ".") {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 1 {
			return fmt.Errorf("segment %q is not a positive integer", seg)
		}
	}
	return nil
}

// idKey converts a hierarchical id to its numeric segments for ordering.
// Invalid segments can only come from rows that never passed UnmarshalRow.
func idKey(id string) []int {
	segs := strings.Split(id, ".")
	key := make([]int, len(segs))
	for i, seg := range segs {
		key[i], _ = strconv.Atoi(seg)
	}
	return key
}

func recordID(record []string) string {
	if len(record) > colID {
		return record[colID]
	}
	return ""
}
