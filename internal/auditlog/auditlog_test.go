package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(op, rowID, details string) Entry {
	return Entry{
		Timestamp: time.Date(2026, 1, 31, 21, 0, 0, 0, time.UTC),
		Op:        op,
		RowID:     rowID,
		Details:   details,
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	err := Append(dir, []Entry{entry("record", "2.1", "Status Quo ▲¥10,000,000")})
	require.NoError(t, err)

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "record", got[0].Op)
	assert.Equal(t, "2.1", got[0].RowID)
	assert.True(t, got[0].Timestamp.Equal(time.Date(2026, 1, 31, 21, 0, 0, 0, time.UTC)))
}

func TestAppend_HeaderWrittenOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("record", "2.1", "a")}))
	require.NoError(t, Append(dir, []Entry{entry("edit", "2.1", "b"), entry("record", "2.2", "c")}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "edit", got[1].Op)
}

func TestRead_NoFile(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"yesterday", "record", "2.1", "", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp")
}
