package indicator

import (
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// MACD returns EMA(fast) - EMA(slow), its EMA(signal) and their difference.
func MACD(values []float64, fast, slow, signal int) (types.MACDResult, error) {
	if err := validateNamedPeriod("Fast", fast); err != nil {
		return types.MACDResult{}, err
	}

	if err := validateNamedPeriod("Slow", slow); err != nil {
		return types.MACDResult{}, err
	}

	if err := validateNamedPeriod("Signal", signal); err != nil {
		return types.MACDResult{}, err
	}

	if fast >= slow {
		return types.MACDResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"Fast period must be less than slow period, got %d and %d.", fast, slow)
	}

	fastEMA, err := EMA(values, fast)
	if err != nil {
		return types.MACDResult{}, err
	}

	slowEMA, err := EMA(values, slow)
	if err != nil {
		return types.MACDResult{}, err
	}

	line := make([]float64, len(values))
	for i := range line {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine, err := EMA(line, signal)
	if err != nil {
		return types.MACDResult{}, err
	}

	histogram := make([]float64, len(values))
	for i := range histogram {
		histogram[i] = line[i] - signalLine[i]
	}

	return types.MACDResult{MACD: line, Signal: signalLine, Histogram: histogram}, nil
}
