package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/klineviz/indicators"
	"github.com/rustyeddy/klineviz/workflow"
)

func trendResult() *workflow.Result {
	t0 := time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC)
	return &workflow.Result{
		Workflow: workflow.NameTrends,
		Window:   2,
		Points: []workflow.SymbolPoints{{
			Symbol: "BTC",
			Points: []workflow.Point{
				{CloseTime: t0, Close: 10, Normalized: 0},
				{CloseTime: t0.Add(24 * time.Hour), Close: 20, Normalized: 0.5, MovingAverage: indicators.Sample{Value: 0.25, Valid: true}},
				{CloseTime: t0.Add(48 * time.Hour), Close: 30, Normalized: 1, MovingAverage: indicators.Sample{Value: 0.75, Valid: true}},
			},
		}},
	}
}

func TestNewSaver(t *testing.T) {
	t.Parallel()

	assert.IsType(t, CSVSaver{}, NewSaver("csv"))
	assert.IsType(t, JSONSaver{}, NewSaver(" JSON "))
	assert.IsType(t, ParquetSaver{}, NewSaver("parquet"))
	assert.Nil(t, NewSaver("xlsx"))
}

func TestRows(t *testing.T) {
	t.Parallel()

	res := trendResult()
	rows := Rows(res.Workflow, res.Points[0].Points)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(1704153599999), rows[0].CloseTimeMs)
	assert.Nil(t, rows[0].MovingAverage)
	assert.Nil(t, rows[0].MovePct)
	require.NotNil(t, rows[1].MovingAverage)
	assert.Equal(t, 0.25, *rows[1].MovingAverage)

	move := Rows(workflow.NameMovement, []workflow.Point{{Close: 1, MovePct: 2.5}})
	require.NotNil(t, move[0].MovePct)
	assert.Equal(t, 2.5, *move[0].MovePct)
	assert.Nil(t, move[0].Normalized)

	change := Rows(workflow.NameChange, []workflow.Point{{Close: 1, ChangePct: -4}})
	require.NotNil(t, change[0].ChangePct)
	assert.Equal(t, -4.0, *change[0].ChangePct)
	assert.Nil(t, change[0].MovePct)
}

func TestWriteResultCSV(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteResult(trendResult(), "csv", dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "btc_trends.csv")}, paths)

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, recs, 4)
	assert.Equal(t, csvHeader, recs[0])
	assert.Equal(t, []string{"1704153599999", "10", "", "0", "", ""}, recs[1])
	assert.Equal(t, "0.75", recs[3][4])
}

func TestWriteResultJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths, err := WriteResult(trendResult(), "json", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	var rows []Row
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 3)
	assert.Nil(t, rows[0].MovingAverage)
	assert.NotContains(t, string(data), "move_pct")
}

func TestWriteResultParquet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths, err := WriteResult(trendResult(), "parquet", dir)
	require.NoError(t, err)

	rows, err := parquet.ReadFile[Row](paths[0])
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 20.0, rows[1].Close)
	require.NotNil(t, rows[2].Normalized)
	assert.Equal(t, 1.0, *rows[2].Normalized)
}

func TestWriteResultUnsupported(t *testing.T) {
	t.Parallel()

	_, err := WriteResult(trendResult(), "xml", t.TempDir())
	assert.Error(t, err)
}
