package indicators

import (
	"fmt"
	"time"

	"github.com/rustyeddy/klineviz/market"
)

// Change is the close-to-close change of a series over a time range.
type Change struct {
	Start   time.Time // time of the first record in range
	End     time.Time // time of the last record in range
	First   float64
	Last    float64
	Records int
	Pct     float64
}

// InRange returns the index span [lo, hi] of the times within [from, to].
// A zero from or to leaves that side unbounded. ok is false when nothing
// falls in the range.
func InRange(times []time.Time, from, to time.Time) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, t := range times {
		if !from.IsZero() && t.Before(from) {
			continue
		}
		if !to.IsZero() && t.After(to) {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	return lo, hi, lo >= 0
}

// PeriodChange returns the percent change from the first to the last close
// whose time falls in [from, to]. The range must hold at least two records.
func PeriodChange(times []time.Time, closes []float64, from, to time.Time) (Change, error) {
	if len(times) != len(closes) {
		return Change{}, fmt.Errorf("times and closes differ in length: %d != %d", len(times), len(closes))
	}
	if len(closes) == 0 {
		return Change{}, &market.SeriesError{Index: market.NoIndex, Op: "change", Err: market.ErrEmptySeries}
	}

	lo, hi, ok := InRange(times, from, to)
	if !ok || hi == lo {
		n := 0
		if ok {
			n = 1
		}
		return Change{}, &market.SeriesError{Index: market.NoIndex, Op: "change", Err: fmt.Errorf("%w: %d in range", market.ErrShortRange, n)}
	}
	if err := checkFinite("change", closes[lo:hi+1]); err != nil {
		return Change{}, err
	}
	if closes[lo] == 0 {
		return Change{}, &market.SeriesError{Index: lo, Op: "change", Err: fmt.Errorf("%w: first close is zero", market.ErrDivisionByZero)}
	}

	c := Change{
		Start:   times[lo],
		End:     times[hi],
		First:   closes[lo],
		Last:    closes[hi],
		Records: hi - lo + 1,
	}
	c.Pct = (c.Last - c.First) / c.First * 100
	return c, nil
}

// SeriesChange is PeriodChange over a loaded series by close time, with
// errors attributed to the series symbol.
func SeriesChange(s *market.Series, from, to time.Time) (Change, error) {
	c, err := PeriodChange(s.CloseTimes(), s.Closes(), from, to)
	if err != nil {
		return c, market.WithSymbol(s.Symbol, "change", err)
	}
	return c, nil
}
