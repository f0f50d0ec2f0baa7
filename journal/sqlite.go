package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

const insertSeries = `
	INSERT INTO series_runs
	(run_id, workflow, symbol, records, first_close, last_close, min_close, max_close, movement_pct, change_pct, ma_window, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insert(e execer, r SeriesRecord) error {
	_, err := e.Exec(insertSeries,
		r.RunID, r.Workflow, r.Symbol, r.Records, r.FirstClose, r.LastClose,
		r.MinClose, r.MaxClose, r.MovementPct, r.ChangePct, r.Window, r.CreatedAt,
	)
	return err
}

func (j *SQLite) RecordSeries(r SeriesRecord) error {
	return insert(j.db, r)
}

// RecordRun inserts all records in one transaction.
func (j *SQLite) RecordRun(recs []SeriesRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err := insert(tx, r); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", r.Symbol, err)
		}
	}
	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
