// journal/journal.go
package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/klineviz/config"
)

// SeriesRecord is the per-symbol summary of one workflow run.
type SeriesRecord struct {
	RunID       string
	Workflow    string
	Symbol      string
	Records     int
	FirstClose  time.Time
	LastClose   time.Time
	MinClose    float64
	MaxClose    float64
	MovementPct float64
	ChangePct   float64
	Window      int
	CreatedAt   time.Time
}

type Journal interface {
	RecordSeries(SeriesRecord) error
	// RecordRun stores every series of one run, or none of them.
	RecordRun([]SeriesRecord) error
	Close() error
}

// Open returns the journal selected by cfg. Type "none" (or empty) gives a
// journal that discards everything.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return Nop{}, nil
	case "csv":
		return NewCSV(cfg.Path)
	case "sqlite":
		return NewSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}

// Nop discards records.
type Nop struct{}

func (Nop) RecordSeries(SeriesRecord) error { return nil }
func (Nop) RecordRun([]SeriesRecord) error  { return nil }
func (Nop) Close() error                    { return nil }
