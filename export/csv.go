package export

import (
	"encoding/csv"
	"os"
	"strconv"
)

var csvHeader = []string{"close_time_ms", "close", "move_pct", "normalized", "moving_average", "change_pct"}

// CSVSaver writes rows with a header; absent values are empty cells.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.CloseTimeMs, 10),
			formatFloat(r.Close),
			optional(r.MovePct),
			optional(r.Normalized),
			optional(r.MovingAverage),
			optional(r.ChangePct),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
