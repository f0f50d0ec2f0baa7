package market

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const row = "1704067200000,42283.58,44184.10,42180.77,44179.55,27174.299,%s,1169995682.05,1253419,13862.33,596861167.21,0\n"

func rowAt(closeMs string) string {
	return strings.Replace(row, "%s", closeMs, 1)
}

func TestLoadSeriesFile(t *testing.T) {
	t.Parallel()

	s, err := LoadSeries("BTCUSDT", filepath.Join("..", "testdata", "BTCUSDT.csv"), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", s.Symbol)
	assert.Equal(t, 8, s.Len())

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.OpenTime)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC), first.CloseTime)
	assert.InDelta(t, 42283.58, first.Open, 1e-9)
	assert.InDelta(t, 44179.55, first.Close, 1e-9)
	assert.Equal(t, int64(1253419), first.NumberOfTrades)
	assert.Equal(t, "0", first.Ignore)

	last, ok := s.Last()
	require.True(t, ok)
	assert.InDelta(t, 46951.04, last.Close, 1e-9)

	assert.Len(t, s.Closes(), 8)
	assert.Len(t, s.Opens(), 8)
	assert.Len(t, s.CloseTimes(), 8)
}

func TestLoadSeriesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSeries("DOGEUSDT", filepath.Join(t.TempDir(), "nope.csv"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.Contains(t, err.Error(), "DOGEUSDT")
}

func TestReadSeriesMalformedValue(t *testing.T) {
	t.Parallel()

	in := rowAt("1704153599999") +
		"1704153600000,44179.55,45879.63,44148.34,abc,65146.4,1704239999999,1.0,2,3.0,4.0,0\n"

	_, err := ReadSeries("BTCUSDT", strings.NewReader(in), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, 1, IndexOf(err))
	assert.Contains(t, err.Error(), "BTCUSDT")
	assert.Contains(t, err.Error(), "parse close")
	assert.Contains(t, err.Error(), "record 1")
}

func TestReadSeriesOutOfRangeValue(t *testing.T) {
	t.Parallel()

	in := rowAt("1704153599999") +
		"1704153600000,44179.55,45879.63,44148.34,1e400,65146.4,1704239999999,1.0,2,3.0,4.0,0\n"

	_, err := ReadSeries("BTCUSDT", strings.NewReader(in), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, 1, IndexOf(err))
	assert.Contains(t, err.Error(), "parse close")
	assert.Contains(t, err.Error(), "out of float64 range")
}

func TestReadSeriesColumnCount(t *testing.T) {
	t.Parallel()

	_, err := ReadSeries("SOLUSDT", strings.NewReader("1,2,3\n"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnCount))
	assert.Equal(t, 0, IndexOf(err))
}

func TestReadSeriesUnsorted(t *testing.T) {
	t.Parallel()

	in := rowAt("1704239999999") + rowAt("1704153599999")

	_, err := ReadSeries("ETHUSDT", strings.NewReader(in), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsorted))
	assert.Equal(t, 1, IndexOf(err))

	s, err := ReadSeries("ETHUSDT", strings.NewReader(in), LoadOptions{Sort: true})
	require.NoError(t, err)
	times := s.CloseTimes()
	assert.True(t, times[0].Before(times[1]))
}

func TestReadSeriesEmpty(t *testing.T) {
	t.Parallel()

	s, err := ReadSeries("BTCUSDT", strings.NewReader(""), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	_, ok := s.First()
	assert.False(t, ok)
}

func TestParseTimestampMicros(t *testing.T) {
	t.Parallel()

	ms, err := parseTimestamp("1735689599999")
	require.NoError(t, err)
	us, err := parseTimestamp("1735689599999999")
	require.NoError(t, err)

	assert.Equal(t, ms.Truncate(time.Millisecond), us.Truncate(time.Millisecond))

	_, err = parseTimestamp("-5")
	assert.Error(t, err)
}

func TestKlineMove(t *testing.T) {
	assert.Equal(t, 10.0, Kline{Open: 100, Close: 90}.Move())
	assert.Equal(t, 10.0, Kline{Open: 100, Close: 110}.Move())
}
