// Package indicators provides the derived series metrics used by the charts:
// proportional movement, min-max normalization and a trailing moving average.
//
// Every function signals a market sentinel error instead of returning NaN or
// Inf, so a bad series stops a workflow before anything is rendered.
package indicators

import (
	"fmt"
	"math"

	"github.com/rustyeddy/klineviz/market"
)

// Sample is one position of a windowed output. Valid is false while the
// window is still filling.
type Sample struct {
	Value float64
	Valid bool
}

// Values returns the defined values of samples, in order.
func Values(samples []Sample) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Valid {
			out = append(out, s.Value)
		}
	}
	return out
}

// checkFinite reports the first NaN or infinite value.
func checkFinite(op string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &market.SeriesError{Index: i, Op: op, Err: fmt.Errorf("%w: %v", market.ErrNonFinite, v)}
		}
	}
	return nil
}
