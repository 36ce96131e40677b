package indicator

import (
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/internal/window"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// BollingerBands returns the SMA of values and bands multiplier population
// standard deviations above and below it.
func BollingerBands(values []float64, period int, multiplier float64) (types.BollingerBandsResult, error) {
	if err := validatePeriod(period); err != nil {
		return types.BollingerBandsResult{}, err
	}

	if !(multiplier > 0) {
		return types.BollingerBandsResult{}, errors.New(errors.ErrCodeInvalidMultiplier, "Multiplier must be greater than 0.")
	}

	middle, err := window.Mean(values, period)
	if err != nil {
		return types.BollingerBandsResult{}, err
	}

	deviation, err := window.StdDev(values, period)
	if err != nil {
		return types.BollingerBandsResult{}, err
	}

	upper := make([]float64, len(values))
	lower := make([]float64, len(values))

	for i := range values {
		upper[i] = middle[i] + multiplier*deviation[i]
		lower[i] = middle[i] - multiplier*deviation[i]
	}

	return types.BollingerBandsResult{Upper: upper, Middle: middle, Lower: lower}, nil
}
