package workflow

import (
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/klineviz/config"
	"github.com/rustyeddy/klineviz/market"
)

// headRows is how many leading rows are logged at debug level per series.
const headRows = 5

// LoadAll loads every configured symbol in order and stops at the first
// failure.
func LoadAll(symbols []config.SymbolConfig, opts market.LoadOptions, log *zap.Logger) ([]*market.Series, error) {
	if log == nil {
		log = zap.NewNop()
	}

	out := make([]*market.Series, 0, len(symbols))
	for _, sc := range symbols {
		s, err := market.LoadSeries(sc.Symbol, sc.Path, opts)
		if err != nil {
			return nil, err
		}
		log.Info("loaded series",
			zap.String("symbol", s.Symbol),
			zap.String("path", s.Filepath),
			zap.Int("records", s.Len()))

		if log.Core().Enabled(zap.DebugLevel) {
			for i, k := range s.Klines {
				if i == headRows {
					break
				}
				log.Debug("head",
					zap.String("symbol", s.Symbol),
					zap.Int("index", i),
					zap.Float64("close", k.Close),
					zap.String("close_time", k.CloseTime.Format(time.RFC3339)))
			}
		}
		out = append(out, s)
	}
	return out, nil
}
