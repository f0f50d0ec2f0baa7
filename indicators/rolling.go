package indicators

import (
	"github.com/montanaflynn/stats"
)

// SimpleMA is a streaming simple moving average over the last period values.
type SimpleMA struct {
	period int
	window []float64
}

// NewMA creates a streaming simple moving average with the given period.
func NewMA(period int) *SimpleMA {
	return &SimpleMA{
		period: period,
		window: make([]float64, 0, period),
	}
}

func (m *SimpleMA) Update(v float64) {
	if m.period <= 0 {
		return
	}
	if len(m.window) == m.period {
		copy(m.window, m.window[1:])
		m.window = m.window[:m.period-1]
	}
	m.window = append(m.window, v)
}

func (m *SimpleMA) Ready() bool {
	return m.period > 0 && len(m.window) == m.period
}

// Value is the mean of the current window, or an invalid Sample during
// warmup.
func (m *SimpleMA) Value() Sample {
	if !m.Ready() {
		return Sample{}
	}
	mean, err := stats.Mean(m.window)
	return Sample{Value: mean, Valid: err == nil}
}
