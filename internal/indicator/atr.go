package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
)

// TrueRange returns max(high-low, |high-prevClose|, |low-prevClose|) per bar.
// The first bar has no previous close and uses high-low.
func TrueRange(columns series.Columns) ([]float64, error) {
	if err := columns.Validate(); err != nil {
		return nil, err
	}

	n := columns.Len()
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		hl := columns.High[i] - columns.Low[i]
		if i == 0 {
			out[i] = hl

			continue
		}

		prevClose := columns.Close[i-1]
		out[i] = math.Max(hl, math.Max(math.Abs(columns.High[i]-prevClose), math.Abs(columns.Low[i]-prevClose)))
	}

	return out, nil
}

// ATR returns the Wilder-smoothed average true range. The first value is the
// mean of the first period true ranges and lands on index period-1.
func ATR(columns series.Columns, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	tr, err := TrueRange(columns)
	if err != nil {
		return nil, err
	}

	return wilder(tr, period, 0), nil
}
