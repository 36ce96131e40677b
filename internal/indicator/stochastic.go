package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/window"
)

// StochasticOscillator returns %K: where close sits inside the rolling
// high/low range, scaled to 0..100. A flat range gives NaN.
func StochasticOscillator(columns series.Columns, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	if err := columns.Validate(); err != nil {
		return nil, err
	}

	highest, err := window.Max(columns.High, period)
	if err != nil {
		return nil, err
	}

	lowest, err := window.Min(columns.Low, period)
	if err != nil {
		return nil, err
	}

	out := series.NaN(columns.Len())
	for i := range out {
		span := highest[i] - lowest[i]
		if math.IsNaN(span) || span == 0 {
			continue
		}

		out[i] = 100 * (columns.Close[i] - lowest[i]) / span
	}

	return out, nil
}

// StochasticMomentumIndex returns the SMI: the distance of close from the
// midpoint of the rolling range, as a percentage of half the range, then
// EMA-smoothed. The high side uses periodH and the low side periodL. A
// smoothing of 1 returns the raw value. A flat range gives NaN.
func StochasticMomentumIndex(columns series.Columns, periodL, periodH, smoothing int) ([]float64, error) {
	if err := validateNamedPeriod("Low", periodL); err != nil {
		return nil, err
	}

	if err := validateNamedPeriod("High", periodH); err != nil {
		return nil, err
	}

	if err := validateNamedPeriod("Smoothing", smoothing); err != nil {
		return nil, err
	}

	if err := columns.Validate(); err != nil {
		return nil, err
	}

	highest, err := window.Max(columns.High, periodH)
	if err != nil {
		return nil, err
	}

	lowest, err := window.Min(columns.Low, periodL)
	if err != nil {
		return nil, err
	}

	raw := series.NaN(columns.Len())
	for i := range raw {
		half := (highest[i] - lowest[i]) / 2
		if math.IsNaN(half) || half == 0 {
			continue
		}

		mid := (highest[i] + lowest[i]) / 2
		raw[i] = (columns.Close[i] - mid) / half * 100
	}

	if smoothing == 1 {
		return raw, nil
	}

	return EMA(raw, smoothing)
}
