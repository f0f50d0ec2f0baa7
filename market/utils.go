package market

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Exchange dumps switched from millisecond to microsecond stamps; anything at
// or above this is read as microseconds.
const microsThreshold = 1e14

func parseKline(row []string) (k Kline, err error) {
	if len(row) != len(Columns) {
		return k, &SeriesError{Index: NoIndex, Op: "row", Err: fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(row), len(Columns))}
	}

	if k.OpenTime, err = parseTimestamp(row[0]); err != nil {
		return k, fieldErr(0, row[0], err)
	}
	floats := []struct {
		col int
		dst *float64
	}{
		{1, &k.Open},
		{2, &k.High},
		{3, &k.Low},
		{4, &k.Close},
		{5, &k.Volume},
		{7, &k.QuoteAssetVolume},
		{9, &k.TakerBuyBaseAssetVolume},
		{10, &k.TakerBuyQuoteAssetVolume},
	}
	for _, f := range floats {
		if *f.dst, err = parseDecimal(row[f.col]); err != nil {
			return k, fieldErr(f.col, row[f.col], err)
		}
	}
	if k.CloseTime, err = parseTimestamp(row[6]); err != nil {
		return k, fieldErr(6, row[6], err)
	}
	if k.NumberOfTrades, err = strconv.ParseInt(strings.TrimSpace(row[8]), 10, 64); err != nil {
		return k, fieldErr(8, row[8], err)
	}
	k.Ignore = row[11]
	return k, nil
}

func fieldErr(col int, raw string, err error) error {
	return &SeriesError{
		Index: NoIndex,
		Op:    "parse " + Columns[col],
		Err:   fmt.Errorf("%w: %q: %v", ErrParse, raw, err),
	}
}

// parseDecimal reads an exchange decimal string exactly before narrowing to
// float64. Values beyond the float64 range are rejected.
func parseDecimal(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("out of float64 range")
	}
	return f, nil
}

// parseTimestamp converts epoch milliseconds (or microseconds) to UTC.
func parseTimestamp(s string) (time.Time, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if v < 0 {
		return time.Time{}, fmt.Errorf("negative timestamp %d", v)
	}
	if v >= microsThreshold {
		return time.UnixMicro(v).UTC(), nil
	}
	return time.UnixMilli(v).UTC(), nil
}
