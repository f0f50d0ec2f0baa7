package journal

import (
	"database/sql"
	"fmt"
)

const selectSeries = `
	SELECT run_id, workflow, symbol, records, first_close, last_close, min_close, max_close, movement_pct, change_pct, ma_window, created_at
	FROM series_runs`

// ListRun returns every series recorded under runID, in symbol order.
func (j *SQLite) ListRun(runID string) ([]SeriesRecord, error) {
	rows, err := j.db.Query(selectSeries+`
		WHERE run_id = ?
		ORDER BY symbol ASC`, runID)
	if err != nil {
		return nil, err
	}
	return scanSeries(rows)
}

// ListSymbol returns the history of one symbol, newest first.
func (j *SQLite) ListSymbol(symbol string, limit int) ([]SeriesRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(selectSeries+`
		WHERE symbol = ?
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, err
	}
	return scanSeries(rows)
}

// LatestRunID returns the most recent run id, or an error when the journal
// is empty.
func (j *SQLite) LatestRunID() (string, error) {
	var runID string
	err := j.db.QueryRow(`SELECT run_id FROM series_runs ORDER BY created_at DESC, run_id DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("journal has no runs")
	}
	return runID, err
}

func scanSeries(rows *sql.Rows) ([]SeriesRecord, error) {
	defer rows.Close()

	var out []SeriesRecord
	for rows.Next() {
		var r SeriesRecord
		if err := rows.Scan(
			&r.RunID,
			&r.Workflow,
			&r.Symbol,
			&r.Records,
			&r.FirstClose,
			&r.LastClose,
			&r.MinClose,
			&r.MaxClose,
			&r.MovementPct,
			&r.ChangePct,
			&r.Window,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
