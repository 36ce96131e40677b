package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// sarState is the accumulator threaded through the Parabolic SAR pass.
type sarState struct {
	sar  float64
	ep   float64
	af   float64
	long bool
}

// ParabolicSAR returns the Parabolic Stop and Reverse for every bar.
//
// The initial direction is long when the midpoint of the second bar is at or
// above the first, short otherwise. Index 0 holds the seed, the first low when
// long or the first high when short, rather than NaN.
func ParabolicSAR(columns series.Columns, params types.SARParams) ([]float64, error) {
	if err := validateSAR(params); err != nil {
		return nil, err
	}

	if err := columns.Validate(); err != nil {
		return nil, err
	}

	n := columns.Len()
	out := make([]float64, n)

	if n == 0 {
		return out, nil
	}

	high, low := columns.High, columns.Low

	state := sarState{af: params.Start, long: true}
	if n > 1 && (high[1]+low[1])/2 < (high[0]+low[0])/2 {
		state.long = false
	}

	if state.long {
		state.sar, state.ep = low[0], high[0]
	} else {
		state.sar, state.ep = high[0], low[0]
	}

	out[0] = state.sar

	for i := 1; i < n; i++ {
		state = stepSAR(state, high, low, i, params)
		out[i] = state.sar
	}

	return out, nil
}

func stepSAR(prev sarState, high, low []float64, i int, params types.SARParams) sarState {
	next := prev
	candidate := prev.sar + prev.af*(prev.ep-prev.sar)

	if prev.long {
		candidate = math.Min(candidate, low[i-1])
		if i >= 2 {
			candidate = math.Min(candidate, low[i-2])
		}

		if low[i] < candidate {
			next.long = false
			next.sar = prev.ep
			next.ep = low[i]
			next.af = params.Start

			return next
		}

		next.sar = candidate
		if high[i] > prev.ep {
			next.ep = high[i]
			next.af = math.Min(prev.af+params.Increment, params.Max)
		}

		return next
	}

	candidate = math.Max(candidate, high[i-1])
	if i >= 2 {
		candidate = math.Max(candidate, high[i-2])
	}

	if high[i] > candidate {
		next.long = true
		next.sar = prev.ep
		next.ep = high[i]
		next.af = params.Start

		return next
	}

	next.sar = candidate
	if low[i] < prev.ep {
		next.ep = low[i]
		next.af = math.Min(prev.af+params.Increment, params.Max)
	}

	return next
}

func validateSAR(params types.SARParams) error {
	if !(params.Start > 0) {
		return errors.New(errors.ErrCodeInvalidAccelerationFactor, "Acceleration start must be greater than 0.")
	}

	if !(params.Increment > 0) {
		return errors.New(errors.ErrCodeInvalidAccelerationFactor, "Acceleration increment must be greater than 0.")
	}

	if !(params.Max >= params.Start) {
		return errors.New(errors.ErrCodeInvalidAccelerationFactor, "Acceleration maximum must not be less than start.")
	}

	return nil
}
