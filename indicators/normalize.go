package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/rustyeddy/klineviz/market"
)

// MinMaxNormalize rescales values into [0, 1] using the range of the whole
// sequence. A constant sequence has no range and fails with
// market.ErrDegenerateRange.
func MinMaxNormalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, &market.SeriesError{Index: market.NoIndex, Op: "normalize", Err: market.ErrEmptySeries}
	}

	if err := checkFinite("normalize", values); err != nil {
		return nil, err
	}

	data := stats.Float64Data(values)
	lo, err := data.Min()
	if err != nil {
		return nil, fmt.Errorf("normalize min: %w", err)
	}
	hi, err := data.Max()
	if err != nil {
		return nil, fmt.Errorf("normalize max: %w", err)
	}
	if hi == lo {
		return nil, &market.SeriesError{
			Index: market.NoIndex,
			Op:    "normalize",
			Err:   fmt.Errorf("%w: every value is %g", market.ErrDegenerateRange, lo),
		}
	}

	span := hi - lo
	if math.IsInf(span, 0) {
		return nil, &market.SeriesError{Index: market.NoIndex, Op: "normalize", Err: fmt.Errorf("%w: range %g..%g overflows", market.ErrNonFinite, lo, hi)}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out, nil
}
