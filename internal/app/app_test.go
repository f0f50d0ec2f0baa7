package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/klineviz/config"
	"github.com/rustyeddy/klineviz/journal"
	"github.com/rustyeddy/klineviz/market"
	"github.com/rustyeddy/klineviz/render"
	"github.com/rustyeddy/klineviz/workflow"
)

type fakeRenderer struct {
	charts []render.Chart
}

func (f *fakeRenderer) Render(c render.Chart) error {
	f.charts = append(f.charts, c)
	return nil
}

type memJournal struct {
	recs   []journal.SeriesRecord
	closed bool
}

func (m *memJournal) RecordSeries(r journal.SeriesRecord) error {
	m.recs = append(m.recs, r)
	return nil
}

func (m *memJournal) RecordRun(recs []journal.SeriesRecord) error {
	m.recs = append(m.recs, recs...)
	return nil
}

func (m *memJournal) Close() error {
	m.closed = true
	return nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Symbols = []config.SymbolConfig{
		{Symbol: "BTC", Path: filepath.Join("..", "..", "testdata", "BTCUSDT.csv")},
		{Symbol: "ETH", Path: filepath.Join("..", "..", "testdata", "ETHUSDT.csv")},
	}
	cfg.Trends.Window = 3
	return cfg
}

func newTestRunner(cfg *config.Config) (*Runner, *fakeRenderer, *memJournal, *bytes.Buffer) {
	fr := &fakeRenderer{}
	mj := &memJournal{}
	out := &bytes.Buffer{}
	return &Runner{
		Config:   cfg,
		Renderer: fr,
		Journal:  mj,
		Out:      out,
		Now:      func() time.Time { return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC) },
	}, fr, mj, out
}

func TestRunMovement(t *testing.T) {
	t.Parallel()

	r, fr, mj, out := newTestRunner(testConfig())
	o, err := r.Run(workflow.NameMovement)
	require.NoError(t, err)

	require.Len(t, fr.charts, 1)
	assert.Equal(t, "Cryptocurrency Close Prices Over Time", fr.charts[0].Title)
	assert.NotEmpty(t, o.RunID)
	assert.Empty(t, o.Artifact)

	require.Len(t, mj.recs, 2)
	assert.Equal(t, o.RunID, mj.recs[0].RunID)
	assert.Equal(t, "BTC", mj.recs[0].Symbol)
	assert.Equal(t, workflow.NameMovement, mj.recs[1].Workflow)
	assert.Equal(t, 0, mj.recs[0].Window)

	assert.Contains(t, out.String(), "ETH")
	require.NoError(t, r.Close())
	assert.True(t, mj.closed)
}

func TestRunTrendsWithExport(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Export.Format = "csv"
	cfg.Export.Dir = t.TempDir()

	r, fr, mj, _ := newTestRunner(cfg)
	o, err := r.Run(workflow.NameTrends)
	require.NoError(t, err)

	require.Len(t, fr.charts, 1)
	assert.Len(t, fr.charts[0].Lines, 4)
	assert.Equal(t, 3, mj.recs[0].Window)
	require.Len(t, o.Exports, 2)
	for _, p := range o.Exports {
		assert.FileExists(t, p)
	}
}

func TestRunFailsBeforeRendering(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Trends.Window = 50
	r, fr, mj, out := newTestRunner(cfg)

	_, err := r.Run(workflow.NameTrends)
	require.Error(t, err)
	assert.True(t, errors.Is(err, market.ErrInvalidWindow))
	assert.Empty(t, fr.charts)
	assert.Empty(t, mj.recs)
	assert.Zero(t, out.Len())

	cfg = testConfig()
	cfg.Symbols = append(cfg.Symbols, config.SymbolConfig{Symbol: "SOL", Path: "nope.csv"})
	r, fr, _, _ = newTestRunner(cfg)
	_, err = r.Run(workflow.NameMovement)
	assert.True(t, errors.Is(err, market.ErrFileNotFound))
	assert.Empty(t, fr.charts)

	_, err = r.Run("candles")
	assert.Error(t, err)
}

func TestNewWritesImageAndSQLiteJournal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig()
	cfg.Output.Mode = config.ModeSave
	cfg.Output.Format = "png"
	cfg.Output.Path = filepath.Join(dir, "movement.png")
	cfg.Output.DPI = 50
	cfg.Output.Width = 4
	cfg.Output.Height = 2
	cfg.Journal.Type = "sqlite"
	cfg.Journal.Path = filepath.Join(dir, "runs.sqlite")

	r, err := New(cfg, nil, nil)
	require.NoError(t, err)
	defer r.Close()

	o, err := r.Run(workflow.NameMovement)
	require.NoError(t, err)
	assert.Equal(t, cfg.Output.Path, o.Artifact)
	info, err := os.Stat(o.Artifact)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	db, ok := r.Journal.(*journal.SQLite)
	require.True(t, ok)
	recs, err := db.ListRun(o.RunID)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRunChange(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	r, fr, mj, out := newTestRunner(cfg)
	o, err := r.Run(workflow.NameChange)
	require.NoError(t, err)

	require.Len(t, fr.charts, 1)
	assert.True(t, fr.charts[0].IsBar())
	assert.Len(t, fr.charts[0].Bars, 2)
	require.Len(t, mj.recs, 2)
	assert.Equal(t, workflow.NameChange, mj.recs[0].Workflow)
	assert.Equal(t, o.Result.Summaries[0].ChangePct, mj.recs[0].ChangePct)
	assert.Contains(t, out.String(), "Change %")

	cfg = testConfig()
	cfg.Change.From = "not-a-date"
	r, fr, _, _ = newTestRunner(cfg)
	_, err = r.Run(workflow.NameChange)
	assert.ErrorContains(t, err, "change.from")
	assert.Empty(t, fr.charts)
}

func TestFailedRunLeavesNoJournal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig()
	cfg.Trends.Window = 50
	cfg.Output.Mode = config.ModeSave
	cfg.Output.Format = "svg"
	cfg.Output.Path = filepath.Join(dir, "trends.svg")
	cfg.Journal.Type = "sqlite"
	cfg.Journal.Path = filepath.Join(dir, "runs.sqlite")

	r, err := New(cfg, nil, nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Run(workflow.NameTrends)
	require.Error(t, err)
	assert.Nil(t, r.Journal)
	assert.NoFileExists(t, cfg.Journal.Path)
	assert.NoFileExists(t, cfg.Output.Path)
}
