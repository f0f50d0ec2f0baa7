package workflow

import (
	"github.com/rustyeddy/klineviz/indicators"
	"github.com/rustyeddy/klineviz/market"
	"github.com/rustyeddy/klineviz/render"
)

// Movement charts close prices with each line as thick as the series' mean
// proportional daily move, in percent.
func Movement(series []*market.Series) (*Result, error) {
	res := &Result{
		Workflow: NameMovement,
		Chart: render.Chart{
			Title: "Cryptocurrency Close Prices Over Time",
			Subtitle: "Line thickness represents the average daily price movement of each asset.\n" +
				"While the prices are vastly different, their proportional movement is, in the grand scheme of things, not.",
			XLabel: "Close Date",
			YLabel: "Close Price",
		},
	}

	for i, s := range series {
		moves, err := indicators.Moves(s.Opens(), s.Closes())
		if err != nil {
			return nil, market.WithSymbol(s.Symbol, "movement", err)
		}
		movement, err := indicators.MeanMovePct(moves)
		if err != nil {
			return nil, market.WithSymbol(s.Symbol, "movement", err)
		}
		sum, err := summarize(s, movement)
		if err != nil {
			return nil, err
		}

		line := render.Line{Label: s.Symbol, Group: i, Width: movement}
		derived := SymbolPoints{Symbol: s.Symbol}
		for j, k := range s.Klines {
			line.Points = append(line.Points, render.Point{Time: k.CloseTime, Value: k.Close})
			derived.Points = append(derived.Points, Point{
				CloseTime: k.CloseTime,
				Close:     k.Close,
				MovePct:   moves[j] * 100,
			})
		}

		res.Chart.Lines = append(res.Chart.Lines, line)
		res.Summaries = append(res.Summaries, sum)
		res.Points = append(res.Points, derived)
	}
	return res, nil
}
