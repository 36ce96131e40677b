package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
)

// TrendsMeter scores trend strength from the one-bar slopes of a short
// SMA(period) and a long SMA(2*period) of close:
//
//	score = 100 * (shortSlope + longSlope) / (|shortSlope| + |longSlope|)
//
// The score is bounded to [-100, 100]. +100 means both averages are rising,
// -100 both falling, values near 0 mean they disagree. Flat averages score 0.
// The first 2*period indices are NaN.
func TrendsMeter(columns series.Columns, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	short, err := SMA(columns.Close, period)
	if err != nil {
		return nil, err
	}

	long, err := SMA(columns.Close, 2*period)
	if err != nil {
		return nil, err
	}

	out := series.NaN(columns.Len())
	for i := 1; i < len(out); i++ {
		shortSlope := short[i] - short[i-1]
		longSlope := long[i] - long[i-1]

		if math.IsNaN(shortSlope) || math.IsNaN(longSlope) {
			continue
		}

		magnitude := math.Abs(shortSlope) + math.Abs(longSlope)
		if magnitude == 0 {
			out[i] = 0

			continue
		}

		out[i] = 100 * (shortSlope + longSlope) / magnitude
	}

	return out, nil
}
