package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"time"
)

// Series is the ordered set of klines loaded for one symbol.
type Series struct {
	Symbol   string
	Filepath string
	Klines   []Kline
}

// LoadOptions controls how a kline file is turned into a Series.
type LoadOptions struct {
	// Sort stably orders rows by close time instead of rejecting a file
	// whose rows are out of order.
	Sort bool
}

// LoadSeries reads the header-less kline CSV at path.
func LoadSeries(symbol, path string, opts LoadOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SeriesError{Symbol: symbol, Index: NoIndex, Op: "open", Err: fmt.Errorf("%w: %s", ErrFileNotFound, path)}
		}
		return nil, &SeriesError{Symbol: symbol, Index: NoIndex, Op: "open", Err: err}
	}
	defer f.Close()

	s, err := ReadSeries(symbol, f, opts)
	if err != nil {
		return nil, err
	}
	s.Filepath = path
	return s, nil
}

// ReadSeries parses kline rows from r. A malformed value fails the whole
// load; nothing is coerced.
func ReadSeries(symbol string, r io.Reader, opts LoadOptions) (*Series, error) {
	s := &Series{Symbol: symbol}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	for idx := 0; ; idx++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SeriesError{Symbol: symbol, Index: idx, Op: "read", Err: fmt.Errorf("%w: %v", ErrParse, err)}
		}
		k, err := parseKline(row)
		if err != nil {
			return nil, WithSymbol(symbol, "", withIndex(idx, err))
		}
		s.Klines = append(s.Klines, k)
	}

	if opts.Sort {
		sort.SliceStable(s.Klines, func(i, j int) bool {
			return s.Klines[i].CloseTime.Before(s.Klines[j].CloseTime)
		})
		return s, nil
	}
	if i := s.firstUnsorted(); i >= 0 {
		return nil, &SeriesError{
			Symbol: symbol,
			Index:  i,
			Op:     "order",
			Err: fmt.Errorf("%w: %s before %s", ErrUnsorted,
				s.Klines[i].CloseTime.Format(time.RFC3339), s.Klines[i-1].CloseTime.Format(time.RFC3339)),
		}
	}
	return s, nil
}

func withIndex(idx int, err error) error {
	var se *SeriesError
	if errors.As(err, &se) {
		cp := *se
		cp.Index = idx
		return &cp
	}
	return &SeriesError{Index: idx, Err: err}
}

// firstUnsorted returns the first index whose close time precedes its
// predecessor, or -1.
func (s *Series) firstUnsorted() int {
	for i := 1; i < len(s.Klines); i++ {
		if s.Klines[i].CloseTime.Before(s.Klines[i-1].CloseTime) {
			return i
		}
	}
	return -1
}

func (s *Series) Len() int {
	return len(s.Klines)
}

func (s *Series) Opens() []float64 {
	out := make([]float64, len(s.Klines))
	for i, k := range s.Klines {
		out[i] = k.Open
	}
	return out
}

func (s *Series) Closes() []float64 {
	out := make([]float64, len(s.Klines))
	for i, k := range s.Klines {
		out[i] = k.Close
	}
	return out
}

func (s *Series) CloseTimes() []time.Time {
	out := make([]time.Time, len(s.Klines))
	for i, k := range s.Klines {
		out[i] = k.CloseTime
	}
	return out
}

// First returns the earliest kline. ok is false for an empty series.
func (s *Series) First() (k Kline, ok bool) {
	if len(s.Klines) == 0 {
		return k, false
	}
	return s.Klines[0], true
}

// Last returns the latest kline. ok is false for an empty series.
func (s *Series) Last() (k Kline, ok bool) {
	if len(s.Klines) == 0 {
		return k, false
	}
	return s.Klines[len(s.Klines)-1], true
}
