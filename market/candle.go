package market

import "time"

// Kline is one fixed-duration candlestick record in the exchange export
// layout. Only Open, Close and CloseTime feed the transforms; the remaining
// columns are kept so a row round-trips without loss.
type Kline struct {
	OpenTime                 time.Time
	Open                     float64
	High                     float64
	Low                      float64
	Close                    float64
	Volume                   float64
	CloseTime                time.Time
	QuoteAssetVolume         float64
	NumberOfTrades           int64
	TakerBuyBaseAssetVolume  float64
	TakerBuyQuoteAssetVolume float64
	Ignore                   string
}

// Columns is the fixed column order of a kline CSV row.
var Columns = []string{
	"open_time", "open", "high", "low", "close", "volume",
	"close_time", "quote_asset_volume", "number_of_trades",
	"taker_buy_base_asset_volume", "taker_buy_quote_asset_volume", "ignore",
}

// Move returns the absolute close-open change of the bucket.
func (k Kline) Move() float64 {
	d := k.Close - k.Open
	if d < 0 {
		return -d
	}
	return d
}
