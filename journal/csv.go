package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"run_id", "workflow", "symbol", "records", "first_close", "last_close",
	"min_close", "max_close", "movement_pct", "change_pct", "ma_window", "created_at",
}

// CSVJournal appends series records to a CSV file, writing the header only
// when the file starts out empty.
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open csv journal: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordSeries(r SeriesRecord) error {
	if err := j.write(r); err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

// RecordRun buffers the whole run and flushes once, so a record that fails
// to encode leaves nothing of the run in the file.
func (j *CSVJournal) RecordRun(recs []SeriesRecord) error {
	for _, r := range recs {
		if err := j.write(r); err != nil {
			return err
		}
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) write(r SeriesRecord) error {
	return j.w.Write([]string{
		r.RunID,
		r.Workflow,
		r.Symbol,
		strconv.Itoa(r.Records),
		r.FirstClose.Format(time.RFC3339Nano),
		r.LastClose.Format(time.RFC3339Nano),
		f(r.MinClose),
		f(r.MaxClose),
		f(r.MovementPct),
		f(r.ChangePct),
		strconv.Itoa(r.Window),
		r.CreatedAt.Format(time.RFC3339),
	})
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
