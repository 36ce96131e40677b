// Package indicator computes technical indicators over price columns.
//
// Every function is pure: inputs are never modified and each call allocates its
// own output. Series outputs have one value per input bar, with NaN wherever the
// value is undefined (warm-up, insufficient history, zero ranges). Insufficient
// history is never an error.
package indicator

import (
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/window"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

var nan = math.NaN()

// periodMessage is shared by every period check.
const periodMessage = "Period must be greater than 0."

func validatePeriod(period int) error {
	if period <= 0 {
		return errors.New(errors.ErrCodeInvalidPeriod, periodMessage)
	}

	return nil
}

// validateNamedPeriod is used where an indicator takes several periods.
func validateNamedPeriod(name string, period int) error {
	if period <= 0 {
		return errors.New(errors.ErrCodeInvalidPeriod, fmt.Sprintf("%s period must be greater than 0.", name))
	}

	return nil
}

// wilder applies Wilder smoothing (alpha = 1/period) to values[start:]. The
// first output is the simple mean of values[start:start+period] and lands on
// index start+period-1.
func wilder(values []float64, period, start int) []float64 {
	out := series.NaN(len(values))
	if start < 0 || start+period > len(values) {
		return out
	}

	sum := 0.0
	for i := start; i < start+period; i++ {
		sum += values[i]
	}

	p := float64(period)
	prev := sum / p
	out[start+period-1] = prev

	for i := start + period; i < len(values); i++ {
		prev = (prev*(p-1) + values[i]) / p
		out[i] = prev
	}

	return out
}

// midline is the midpoint of the rolling high maximum and the rolling low minimum.
func midline(high, low []float64, highPeriod, lowPeriod int) ([]float64, error) {
	highest, err := window.Max(high, highPeriod)
	if err != nil {
		return nil, err
	}

	lowest, err := window.Min(low, lowPeriod)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(high))
	for i := range out {
		out[i] = (highest[i] + lowest[i]) / 2
	}

	return out, nil
}
