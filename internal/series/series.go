// Package series adapts a bar sequence into parallel price columns.
package series

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// Columns are the parallel open/high/low/close/volume/time columns of a bar series.
// All columns share one index and have equal length.
type Columns struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
	Time   []time.Time
}

// FromBars splits bars into columns. The bars are not modified.
func FromBars(bars []types.Bar) Columns {
	n := len(bars)
	c := Columns{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
		Time:   make([]time.Time, n),
	}

	for i, bar := range bars {
		c.Open[i] = bar.Open
		c.High[i] = bar.High
		c.Low[i] = bar.Low
		c.Close[i] = bar.Close
		c.Volume[i] = bar.Volume
		c.Time[i] = bar.Time
	}

	return c
}

// Len returns the number of bars.
func (c Columns) Len() int {
	return len(c.Close)
}

// Field returns the column for a price field. An empty field selects close.
func (c Columns) Field(field types.PriceField) ([]float64, error) {
	switch field {
	case types.PriceFieldOpen:
		return c.Open, nil
	case types.PriceFieldHigh:
		return c.High, nil
	case types.PriceFieldLow:
		return c.Low, nil
	case types.PriceFieldClose, "":
		return c.Close, nil
	case types.PriceFieldVolume:
		return c.Volume, nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidPriceField, "unknown price field %q", field)
	}
}

// Validate checks that the high, low and close columns line up.
// Time and open may be empty when the caller built columns by hand.
func (c Columns) Validate() error {
	n := len(c.Close)
	if len(c.High) != n || len(c.Low) != n {
		return errors.Newf(errors.ErrCodeMismatchedLength,
			"high, low and close must have equal length, got %d, %d, %d", len(c.High), len(c.Low), n)
	}

	if len(c.Open) != 0 && len(c.Open) != n {
		return errors.Newf(errors.ErrCodeMismatchedLength, "open has length %d, expected %d", len(c.Open), n)
	}

	if len(c.Time) != 0 && len(c.Time) != n {
		return errors.Newf(errors.ErrCodeMismatchedLength, "time has length %d, expected %d", len(c.Time), n)
	}

	return nil
}

// TimeAt returns the time of bar i, or the zero time when no time column exists.
func (c Columns) TimeAt(i int) time.Time {
	if i < 0 || i >= len(c.Time) {
		return time.Time{}
	}

	return c.Time[i]
}

// NaN returns a series of n NaN values.
func NaN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

// FirstValid returns the index of the first non-NaN value, or -1.
func FirstValid(values []float64) int {
	for i, v := range values {
		if !math.IsNaN(v) {
			return i
		}
	}

	return -1
}
