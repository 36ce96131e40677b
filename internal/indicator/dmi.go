package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
)

// DirectionalMovement returns +DI, -DI, DX and ADX.
//
// Only the larger of the up-move and down-move counts as directional movement,
// and only when positive; ties count for neither side. True range and both
// movements are Wilder-smoothed from bar 1, so DI and DX start at index period
// and ADX, the Wilder-smoothed DX, starts at index 2*period-1.
func DirectionalMovement(columns series.Columns, period int) (types.DMIResult, error) {
	if err := validatePeriod(period); err != nil {
		return types.DMIResult{}, err
	}

	if err := columns.Validate(); err != nil {
		return types.DMIResult{}, err
	}

	n := columns.Len()
	result := types.DMIResult{
		PlusDI:  series.NaN(n),
		MinusDI: series.NaN(n),
		DX:      series.NaN(n),
		ADX:     series.NaN(n),
	}

	if n <= period {
		return result, nil
	}

	tr, err := TrueRange(columns)
	if err != nil {
		return types.DMIResult{}, err
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)

	for i := 1; i < n; i++ {
		up := columns.High[i] - columns.High[i-1]
		down := columns.Low[i-1] - columns.Low[i]

		if up > down && up > 0 {
			plusDM[i] = up
		}

		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	smoothTR := wilder(tr, period, 1)
	smoothPlus := wilder(plusDM, period, 1)
	smoothMinus := wilder(minusDM, period, 1)

	for i := period; i < n; i++ {
		plus, minus := 0.0, 0.0
		if smoothTR[i] != 0 {
			plus = 100 * smoothPlus[i] / smoothTR[i]
			minus = 100 * smoothMinus[i] / smoothTR[i]
		}

		dx := 0.0
		if sum := plus + minus; sum != 0 {
			dx = 100 * math.Abs(plus-minus) / sum
		}

		result.PlusDI[i] = plus
		result.MinusDI[i] = minus
		result.DX[i] = dx
	}

	result.ADX = wilder(result.DX, period, period)

	return result, nil
}

// DirectionalMovementIndex returns the ADX line of DirectionalMovement.
func DirectionalMovementIndex(columns series.Columns, period int) ([]float64, error) {
	result, err := DirectionalMovement(columns, period)
	if err != nil {
		return nil, err
	}

	return result.ADX, nil
}
