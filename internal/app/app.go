// Package app runs a workflow end to end: load, transform, render, then
// record and report.
package app

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/klineviz/config"
	"github.com/rustyeddy/klineviz/export"
	"github.com/rustyeddy/klineviz/journal"
	"github.com/rustyeddy/klineviz/market"
	"github.com/rustyeddy/klineviz/pkg/id"
	"github.com/rustyeddy/klineviz/render"
	"github.com/rustyeddy/klineviz/report"
	"github.com/rustyeddy/klineviz/workflow"
)

// Runner holds what a run needs. Renderer is built from Config by New.
// Journal is opened from Config on the first successful run unless a test
// has set it.
type Runner struct {
	Config   *config.Config
	Log      *zap.Logger
	Renderer render.Renderer
	Journal  journal.Journal
	Out      io.Writer // summary table; nil skips it
	Now      func() time.Time
}

// Outcome describes a finished run.
type Outcome struct {
	RunID    string
	Result   *workflow.Result
	Artifact string
	Exports  []string
}

// New builds a Runner with the renderer selected by cfg.
func New(cfg *config.Config, log *zap.Logger, out io.Writer) (*Runner, error) {
	r, err := render.New(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return &Runner{
		Config:   cfg,
		Log:      log,
		Renderer: r,
		Out:      out,
		Now:      time.Now,
	}, nil
}

// Close releases the journal.
func (r *Runner) Close() error {
	if r.Journal == nil {
		return nil
	}
	return r.Journal.Close()
}

// Run executes the named workflow. Nothing is rendered, journaled or
// exported unless every series loads and transforms cleanly.
func (r *Runner) Run(name string) (*Outcome, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	started := now()
	runID := id.New(started)
	log = log.With(zap.String("run_id", runID), zap.String("workflow", name))

	series, err := workflow.LoadAll(r.Config.Symbols, market.LoadOptions{Sort: r.Config.Load.Sort}, log)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	var res *workflow.Result
	switch name {
	case workflow.NameMovement:
		res, err = workflow.Movement(series)
	case workflow.NameTrends:
		res, err = workflow.Trends(series, r.Config.Trends.Window)
	case workflow.NameChange:
		from, to, rerr := r.Config.Change.Range()
		if rerr != nil {
			return nil, rerr
		}
		res, err = workflow.Change(series, from, to)
	default:
		return nil, fmt.Errorf("unknown workflow %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, s := range res.Summaries {
		log.Info("series summary",
			zap.String("symbol", s.Symbol),
			zap.Int("records", s.Records),
			zap.Float64("movement_pct", s.MovementPct),
			zap.Float64("change_pct", s.ChangePct))
	}

	if err := r.Renderer.Render(res.Chart); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := &Outcome{RunID: runID, Result: res}
	if a, ok := r.Renderer.(render.Artifact); ok {
		out.Artifact = a.Written()
		log.Info("chart written", zap.String("path", out.Artifact))
	}

	if err := r.record(runID, res, started); err != nil {
		return out, fmt.Errorf("journal: %w", err)
	}

	if ex := r.Config.Export; ex.Format != "" {
		out.Exports, err = export.WriteResult(res, ex.Format, ex.Dir)
		if err != nil {
			return out, err
		}
		log.Info("exported points", zap.Strings("paths", out.Exports))
	}

	if r.Out != nil {
		report.Summaries(r.Out, res)
	}
	return out, nil
}

func (r *Runner) record(runID string, res *workflow.Result, at time.Time) error {
	if r.Journal == nil {
		j, err := journal.Open(r.Config.Journal)
		if err != nil {
			return err
		}
		r.Journal = j
	}
	recs := make([]journal.SeriesRecord, 0, len(res.Summaries))
	for _, s := range res.Summaries {
		recs = append(recs, journal.SeriesRecord{
			RunID:       runID,
			Workflow:    res.Workflow,
			Symbol:      s.Symbol,
			Records:     s.Records,
			FirstClose:  s.FirstClose,
			LastClose:   s.LastClose,
			MinClose:    s.MinClose,
			MaxClose:    s.MaxClose,
			MovementPct: s.MovementPct,
			ChangePct:   s.ChangePct,
			Window:      res.Window,
			CreatedAt:   at.UTC(),
		})
	}
	return r.Journal.RecordRun(recs)
}
