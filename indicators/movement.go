package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/rustyeddy/klineviz/market"
)

// Moves returns |close-open|/open for every record. The open is taken by
// magnitude so no move is negative.
func Moves(opens, closes []float64) ([]float64, error) {
	if len(opens) != len(closes) {
		return nil, fmt.Errorf("opens and closes differ in length: %d != %d", len(opens), len(closes))
	}
	if len(opens) == 0 {
		return nil, &market.SeriesError{Index: market.NoIndex, Op: "movement", Err: market.ErrEmptySeries}
	}

	if err := checkFinite("movement", opens); err != nil {
		return nil, err
	}
	if err := checkFinite("movement", closes); err != nil {
		return nil, err
	}

	moves := make([]float64, len(opens))
	for i := range opens {
		if opens[i] == 0 {
			return nil, &market.SeriesError{Index: i, Op: "movement", Err: fmt.Errorf("%w: open is zero", market.ErrDivisionByZero)}
		}
		moves[i] = math.Abs(closes[i]-opens[i]) / math.Abs(opens[i])
	}
	return moves, nil
}

// ProportionalMovement returns the mean of Moves scaled to a percentage.
func ProportionalMovement(opens, closes []float64) (float64, error) {
	moves, err := Moves(opens, closes)
	if err != nil {
		return 0, err
	}
	return MeanMovePct(moves)
}

// MeanMovePct is the mean of moves already computed by Moves, in percent.
func MeanMovePct(moves []float64) (float64, error) {
	mean, err := stats.Mean(moves)
	if err != nil {
		return 0, fmt.Errorf("movement mean: %w", err)
	}
	return mean * 100, nil
}

// SeriesMovement is ProportionalMovement over a loaded series, with errors
// attributed to the series symbol.
func SeriesMovement(s *market.Series) (float64, error) {
	m, err := ProportionalMovement(s.Opens(), s.Closes())
	if err != nil {
		return 0, market.WithSymbol(s.Symbol, "movement", err)
	}
	return m, nil
}
