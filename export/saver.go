package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/klineviz/workflow"
)

// Saver writes one symbol's rows to path.
type Saver interface {
	Save(rows []Row, path string) error
	Extension() string
}

// NewSaver returns the saver for format (csv, json or parquet), or nil if
// the format is not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}

// Path is where the rows of symbol from workflow name are written.
func Path(dir, name, symbol string, s Saver) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", strings.ToLower(symbol), name, s.Extension()))
}

// WriteResult saves every symbol of res under dir and returns the paths
// written, in symbol order.
func WriteResult(res *workflow.Result, format, dir string) ([]string, error) {
	s := NewSaver(format)
	if s == nil {
		return nil, fmt.Errorf("export: unsupported format %q (use csv, json or parquet)", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	paths := make([]string, 0, len(res.Points))
	for _, sp := range res.Points {
		path := Path(dir, res.Workflow, sp.Symbol, s)
		if err := s.Save(Rows(res.Workflow, sp.Points), path); err != nil {
			return paths, fmt.Errorf("export %s: %w", sp.Symbol, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
