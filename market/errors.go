package market

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrParse           = errors.New("parse error")
	ErrColumnCount     = errors.New("unexpected column count")
	ErrUnsorted        = errors.New("close_time out of order")
	ErrEmptySeries     = errors.New("empty series")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrDegenerateRange = errors.New("degenerate range")
	ErrInvalidWindow   = errors.New("invalid window")
	ErrNonFinite       = errors.New("non-finite value")
	ErrShortRange      = errors.New("range holds fewer than two records")
)

// NoIndex marks a SeriesError that is not tied to a single record.
const NoIndex = -1

// SeriesError ties a failure to the symbol being processed and, when it
// applies, the zero-based record index.
type SeriesError struct {
	Symbol string
	Index  int
	Op     string
	Err    error
}

func (e *SeriesError) Error() string {
	msg := e.Symbol
	if msg == "" {
		msg = "series"
	}
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(": record %d", e.Index)
	}
	return msg + ": " + e.Err.Error()
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// WithSymbol returns err attributed to symbol. A SeriesError without a
// symbol is filled in; anything else is wrapped.
func WithSymbol(symbol, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *SeriesError
	if errors.As(err, &se) && se.Symbol == "" {
		cp := *se
		cp.Symbol = symbol
		if cp.Op == "" {
			cp.Op = op
		}
		return &cp
	}
	if errors.As(err, &se) {
		return err
	}
	return &SeriesError{Symbol: symbol, Index: NoIndex, Op: op, Err: err}
}

// IndexOf reports the record index carried by err, or NoIndex.
func IndexOf(err error) int {
	var se *SeriesError
	if errors.As(err, &se) {
		return se.Index
	}
	return NoIndex
}
