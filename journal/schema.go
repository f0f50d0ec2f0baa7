// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS series_runs (
	run_id TEXT NOT NULL,
	workflow TEXT NOT NULL,
	symbol TEXT NOT NULL,
	records INTEGER NOT NULL,
	first_close DATETIME NOT NULL,
	last_close DATETIME NOT NULL,
	min_close REAL NOT NULL,
	max_close REAL NOT NULL,
	movement_pct REAL NOT NULL,
	change_pct REAL NOT NULL DEFAULT 0,
	ma_window INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (run_id, symbol)
);

CREATE INDEX IF NOT EXISTS idx_series_runs_symbol ON series_runs(symbol, created_at);
`
