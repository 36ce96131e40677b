package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/window"
)

// SMA returns the simple moving average of values.
func SMA(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	return window.Mean(values, period)
}

// EMA returns the exponential moving average of values with k = 2/(period+1).
//
// The average is seeded with the simple mean of the first run of period
// consecutive non-NaN values, so a series with a leading NaN region (another
// indicator's output) is smoothed from its first defined stretch. For plain
// price input the seed lands on index period-1. A NaN after the seed yields NaN
// at that index and the average resumes from its last value.
func EMA(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	out := series.NaN(len(values))

	seedEnd := -1
	run := 0

	for i, v := range values {
		if math.IsNaN(v) {
			run = 0

			continue
		}

		run++
		if run == period {
			seedEnd = i

			break
		}
	}

	if seedEnd < 0 {
		return out, nil
	}

	sum := 0.0
	for i := seedEnd - period + 1; i <= seedEnd; i++ {
		sum += values[i]
	}

	k := 2 / float64(period+1)
	prev := sum / float64(period)
	out[seedEnd] = prev

	for i := seedEnd + 1; i < len(values); i++ {
		if math.IsNaN(values[i]) {
			continue
		}

		prev = values[i]*k + prev*(1-k)
		out[i] = prev
	}

	return out, nil
}
