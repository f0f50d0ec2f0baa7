package indicators

import (
	"fmt"
	"iter"

	"github.com/rustyeddy/klineviz/market"
)

// DefaultWindow is the trailing window used by the trend chart.
const DefaultWindow = 7

// MovingAverage yields, for every index of values, the mean of the trailing
// window ending there. The first window-1 samples are not Valid.
//
// The window is checked up front; the averages themselves are computed only
// as the sequence is consumed.
func MovingAverage(values []float64, window int) (iter.Seq2[int, Sample], error) {
	if window <= 0 {
		return nil, &market.SeriesError{Index: market.NoIndex, Op: "moving average", Err: fmt.Errorf("%w: window must be positive, got %d", market.ErrInvalidWindow, window)}
	}
	if window > len(values) {
		return nil, &market.SeriesError{Index: market.NoIndex, Op: "moving average", Err: fmt.Errorf("%w: need %d values, got %d", market.ErrInvalidWindow, window, len(values))}
	}

	if err := checkFinite("moving average", values); err != nil {
		return nil, err
	}

	return func(yield func(int, Sample) bool) {
		ma := NewMA(window)
		for i, v := range values {
			ma.Update(v)
			if !yield(i, ma.Value()) {
				return
			}
		}
	}, nil
}

// MovingAverageSlice collects MovingAverage into a slice the same length as
// values.
func MovingAverageSlice(values []float64, window int) ([]Sample, error) {
	seq, err := MovingAverage(values, window)
	if err != nil {
		return nil, err
	}
	out := make([]Sample, 0, len(values))
	for _, s := range seq {
		out = append(out, s)
	}
	return out, nil
}
