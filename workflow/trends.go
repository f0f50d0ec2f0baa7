package workflow

import (
	"fmt"

	"github.com/rustyeddy/klineviz/indicators"
	"github.com/rustyeddy/klineviz/market"
	"github.com/rustyeddy/klineviz/render"
)

// Trends charts min-max normalized closes with a dashed trailing moving
// average for each series.
func Trends(series []*market.Series, window int) (*Result, error) {
	res := &Result{
		Workflow: NameTrends,
		Window:   window,
		Chart: render.Chart{
			Title:  "Cryptocurrency Trends (Normalized with Moving Averages)",
			XLabel: "Time",
			YLabel: "Normalized Closing Price",
		},
	}

	for i, s := range series {
		normalized, err := indicators.MinMaxNormalize(s.Closes())
		if err != nil {
			return nil, market.WithSymbol(s.Symbol, "normalize", err)
		}
		avg, err := indicators.MovingAverageSlice(normalized, window)
		if err != nil {
			return nil, market.WithSymbol(s.Symbol, "moving average", err)
		}
		sum, err := summarize(s, bestMovement(s))
		if err != nil {
			return nil, err
		}

		norm := render.Line{Label: fmt.Sprintf("%s (Normalized)", s.Symbol), Group: i}
		ma := render.Line{Label: fmt.Sprintf("%s (%d-day MA)", s.Symbol, window), Group: i, Dashed: true}
		derived := SymbolPoints{Symbol: s.Symbol}
		for j, k := range s.Klines {
			norm.Points = append(norm.Points, render.Point{Time: k.CloseTime, Value: normalized[j]})
			if avg[j].Valid {
				ma.Points = append(ma.Points, render.Point{Time: k.CloseTime, Value: avg[j].Value})
			}
			derived.Points = append(derived.Points, Point{
				CloseTime:     k.CloseTime,
				Close:         k.Close,
				Normalized:    normalized[j],
				MovingAverage: avg[j],
			})
		}

		res.Chart.Lines = append(res.Chart.Lines, norm, ma)
		res.Summaries = append(res.Summaries, sum)
		res.Points = append(res.Points, derived)
	}
	return res, nil
}
