package workflow

import (
	"time"

	"github.com/rustyeddy/klineviz/indicators"
	"github.com/rustyeddy/klineviz/market"
	"github.com/rustyeddy/klineviz/render"
)

const rangeFormat = "2006-01-02 15:04"

// Change charts the first-to-last close change of each series over
// [from, to] as one bar per symbol. A zero from or to leaves that side open.
func Change(series []*market.Series, from, to time.Time) (*Result, error) {
	res := &Result{
		Workflow: NameChange,
		From:     from,
		To:       to,
		Chart: render.Chart{
			Title:    "Cryptocurrency Close Change",
			Subtitle: "Time Range: " + describeRange(from, to),
			XLabel:   "Symbol",
			YLabel:   "Change (%)",
		},
	}

	for i, s := range series {
		c, err := indicators.SeriesChange(s, from, to)
		if err != nil {
			return nil, err
		}
		sum, err := summarize(s, bestMovement(s))
		if err != nil {
			return nil, err
		}
		sum.ChangePct = c.Pct

		derived := SymbolPoints{Symbol: s.Symbol}
		for _, k := range s.Klines {
			if k.CloseTime.Before(c.Start) || k.CloseTime.After(c.End) {
				continue
			}
			derived.Points = append(derived.Points, Point{
				CloseTime: k.CloseTime,
				Close:     k.Close,
				ChangePct: (k.Close - c.First) / c.First * 100,
			})
		}

		res.Chart.Bars = append(res.Chart.Bars, render.Bar{Label: s.Symbol, Group: i, Value: c.Pct})
		res.Summaries = append(res.Summaries, sum)
		res.Points = append(res.Points, derived)
	}
	return res, nil
}

func describeRange(from, to time.Time) string {
	start, end := "start", "end"
	if !from.IsZero() {
		start = from.UTC().Format(rangeFormat)
	}
	if !to.IsZero() {
		end = to.UTC().Format(rangeFormat)
	}
	return start + " to " + end
}
