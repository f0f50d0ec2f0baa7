// Package export writes the derived points of a workflow run to disk, one
// file per symbol.
package export

import (
	"github.com/rustyeddy/klineviz/workflow"
)

// Row is the on-disk form of a workflow.Point. Fields a workflow does not
// produce are nil and omitted.
type Row struct {
	CloseTimeMs   int64    `json:"close_time_ms" parquet:"close_time_ms"`
	Close         float64  `json:"close" parquet:"close"`
	MovePct       *float64 `json:"move_pct,omitempty" parquet:"move_pct"`
	Normalized    *float64 `json:"normalized,omitempty" parquet:"normalized"`
	MovingAverage *float64 `json:"moving_average,omitempty" parquet:"moving_average"`
	ChangePct     *float64 `json:"change_pct,omitempty" parquet:"change_pct"`
}

// Rows converts points for the named workflow.
func Rows(name string, pts []workflow.Point) []Row {
	rows := make([]Row, len(pts))
	for i, p := range pts {
		r := Row{CloseTimeMs: p.CloseTime.UnixMilli(), Close: p.Close}
		switch name {
		case workflow.NameMovement:
			r.MovePct = ptr(p.MovePct)
		case workflow.NameTrends:
			r.Normalized = ptr(p.Normalized)
			if p.MovingAverage.Valid {
				r.MovingAverage = ptr(p.MovingAverage.Value)
			}
		case workflow.NameChange:
			r.ChangePct = ptr(p.ChangePct)
		}
		rows[i] = r
	}
	return rows
}

func ptr(v float64) *float64 { return &v }
