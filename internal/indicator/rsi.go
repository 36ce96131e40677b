package indicator

import "github.com/rxtech-lab/argo-ta/internal/series"

// RSI returns the Relative Strength Index of values.
//
// Average gain and loss start as the simple mean of the first period
// differences and are Wilder-smoothed afterwards. The first period indices are
// NaN. A zero average loss gives 100.
func RSI(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	n := len(values)
	if n <= period {
		return series.NaN(n), nil
	}

	gains := make([]float64, n)
	losses := make([]float64, n)

	for i := 1; i < n; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	avgGain := wilder(gains, period, 1)
	avgLoss := wilder(losses, period, 1)

	out := series.NaN(n)
	for i := period; i < n; i++ {
		if avgLoss[i] == 0 {
			out[i] = 100

			continue
		}

		rs := avgGain[i] / avgLoss[i]
		out[i] = 100 - 100/(1+rs)
	}

	return out, nil
}
