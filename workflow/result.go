// Package workflow turns configured kline files into chart-ready results.
//
// Every series is loaded and transformed before a Result is returned, so a
// failure on any symbol aborts the run before anything is drawn.
package workflow

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/rustyeddy/klineviz/indicators"
	"github.com/rustyeddy/klineviz/market"
	"github.com/rustyeddy/klineviz/render"
)

const (
	NameMovement = "movement"
	NameTrends   = "trends"
	NameChange   = "change"
)

// Summary describes one loaded series.
type Summary struct {
	Symbol      string
	Records     int
	FirstClose  time.Time
	LastClose   time.Time
	MinClose    float64
	MaxClose    float64
	MovementPct float64
	ChangePct   float64
}

// Point is one record of derived output. Which fields are meaningful depends
// on the workflow that produced it.
type Point struct {
	CloseTime     time.Time
	Close         float64
	MovePct       float64
	Normalized    float64
	MovingAverage indicators.Sample
	ChangePct     float64
}

// SymbolPoints holds the derived points of one symbol.
type SymbolPoints struct {
	Symbol string
	Points []Point
}

// Result is the outcome of a workflow, ready to render.
type Result struct {
	Workflow  string
	Window    int
	From      time.Time // change range; zero is unbounded
	To        time.Time
	Chart     render.Chart
	Summaries []Summary
	Points    []SymbolPoints
}

// bestMovement is the series movement, or zero when opens make it
// undefined. Workflows that only read closes record it without failing.
func bestMovement(s *market.Series) float64 {
	m, err := indicators.SeriesMovement(s)
	if err != nil {
		return 0
	}
	return m
}

func summarize(s *market.Series, movement float64) (Summary, error) {
	sum := Summary{Symbol: s.Symbol, Records: s.Len(), MovementPct: movement}
	if first, ok := s.First(); ok {
		sum.FirstClose = first.CloseTime
	}
	if last, ok := s.Last(); ok {
		sum.LastClose = last.CloseTime
	}
	closes := stats.Float64Data(s.Closes())
	if len(closes) == 0 {
		return sum, market.WithSymbol(s.Symbol, "summary", market.ErrEmptySeries)
	}
	var err error
	if sum.MinClose, err = closes.Min(); err != nil {
		return sum, err
	}
	if sum.MaxClose, err = closes.Max(); err != nil {
		return sum, err
	}
	return sum, nil
}
