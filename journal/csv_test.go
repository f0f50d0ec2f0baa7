package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(runID, symbol string) SeriesRecord {
	return SeriesRecord{
		RunID:       runID,
		Workflow:    "movement",
		Symbol:      symbol,
		Records:     8,
		FirstClose:  time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC),
		LastClose:   time.Date(2024, 1, 8, 23, 59, 59, 999_000_000, time.UTC),
		MinClose:    42845.23,
		MaxClose:    46951.04,
		MovementPct: 2.3456789,
		Window:      7,
		CreatedAt:   time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC),
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}

func TestCSVJournalRecordSeries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	rec := testRecord("R1", "BTCUSDT")
	assert.NoError(t, j.RecordSeries(rec))
	assert.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 2)

	want := []string{
		"R1",
		"movement",
		"BTCUSDT",
		"8",
		rec.FirstClose.Format(time.RFC3339Nano),
		rec.LastClose.Format(time.RFC3339Nano),
		"42845.230000",
		"46951.040000",
		"2.345679",
		"0.000000",
		"7",
		rec.CreatedAt.Format(time.RFC3339),
	}
	assert.Equal(t, want, rows[1])
}

func TestCSVJournalAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	for _, run := range []string{"R1", "R2"} {
		j, err := NewCSV(path)
		require.NoError(t, err)
		require.NoError(t, j.RecordSeries(testRecord(run, "ETHUSDT")))
		require.NoError(t, j.Close())
	}

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "R1", rows[1][0])
	assert.Equal(t, "R2", rows[2][0])
}

func TestCSVJournalRecordRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	eth := testRecord("R1", "ETHUSDT")
	eth.Workflow = "change"
	eth.ChangePct = -3.5
	require.NoError(t, j.RecordRun([]SeriesRecord{testRecord("R1", "BTCUSDT"), eth}))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "BTCUSDT", rows[1][2])
	assert.Equal(t, "-3.500000", rows[2][9])
}

func TestOpen(t *testing.T) {
	t.Parallel()

	j, err := Open(configFor("none", ""))
	require.NoError(t, err)
	assert.IsType(t, Nop{}, j)
	assert.NoError(t, j.RecordSeries(testRecord("R", "X")))
	assert.NoError(t, j.RecordRun([]SeriesRecord{testRecord("R", "X")}))

	j, err = Open(configFor("csv", filepath.Join(t.TempDir(), "j.csv")))
	require.NoError(t, err)
	assert.IsType(t, &CSVJournal{}, j)
	assert.NoError(t, j.Close())

	_, err = Open(configFor("postgres", "x"))
	assert.Error(t, err)
}
