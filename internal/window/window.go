// Package window implements rolling statistics over float64 series in O(N).
//
// Every function returns a series with the same length as its input. Positions
// before the first full window are NaN, and so is every position whose window
// contains a NaN input.
package window

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

func validate(window int) error {
	if window <= 0 {
		return errors.New(errors.ErrCodeInvalidWindow, "Window must be greater than 0.")
	}

	return nil
}

// Sum returns the rolling sum.
func Sum(values []float64, window int) ([]float64, error) {
	return moments(values, window, func(n, s1, _, shift float64) float64 {
		return s1 + n*shift
	})
}

// Mean returns the rolling arithmetic mean.
func Mean(values []float64, window int) ([]float64, error) {
	return moments(values, window, func(n, s1, _, shift float64) float64 {
		return shift + s1/n
	})
}

// StdDev returns the rolling population standard deviation.
func StdDev(values []float64, window int) ([]float64, error) {
	return moments(values, window, func(n, s1, s2, _ float64) float64 {
		variance := (s2 - s1*s1/n) / n
		if variance < 0 {
			variance = 0
		}

		return math.Sqrt(variance)
	})
}

// moments keeps sliding first and second moments of values shifted by the
// first finite input, which keeps the variance free of catastrophic cancellation.
func moments(values []float64, window int, finish func(n, s1, s2, shift float64) float64) ([]float64, error) {
	if err := validate(window); err != nil {
		return nil, err
	}

	out := series.NaN(len(values))

	shift := 0.0
	if first := series.FirstValid(values); first >= 0 {
		shift = values[first]
	}

	var s1, s2 float64

	nanCount := 0

	for i, v := range values {
		if math.IsNaN(v) {
			nanCount++
		} else {
			d := v - shift
			s1 += d
			s2 += d * d
		}

		if i >= window {
			old := values[i-window]
			if math.IsNaN(old) {
				nanCount--
			} else {
				d := old - shift
				s1 -= d
				s2 -= d * d
			}
		}

		if i >= window-1 && nanCount == 0 {
			out[i] = finish(float64(window), s1, s2, shift)
		}
	}

	return out, nil
}

// Max returns the rolling maximum.
func Max(values []float64, window int) ([]float64, error) {
	return extreme(values, window, func(a, b float64) bool { return a >= b })
}

// Min returns the rolling minimum.
func Min(values []float64, window int) ([]float64, error) {
	return extreme(values, window, func(a, b float64) bool { return a <= b })
}

// extreme runs a monotonic deque of indices. dominates(a, b) reports whether a
// newer value a makes an older value b irrelevant.
func extreme(values []float64, window int, dominates func(a, b float64) bool) ([]float64, error) {
	if err := validate(window); err != nil {
		return nil, err
	}

	out := series.NaN(len(values))
	deque := make([]int, 0, window)
	nanCount := 0

	for i, v := range values {
		if i >= window && math.IsNaN(values[i-window]) {
			nanCount--
		}

		if len(deque) > 0 && deque[0] <= i-window {
			deque = deque[1:]
		}

		if math.IsNaN(v) {
			nanCount++
		} else {
			for len(deque) > 0 && dominates(v, values[deque[len(deque)-1]]) {
				deque = deque[:len(deque)-1]
			}

			deque = append(deque, i)
		}

		if i >= window-1 && nanCount == 0 {
			out[i] = values[deque[0]]
		}
	}

	return out, nil
}

// Shift displaces values by n positions without resizing. A positive n moves
// values forward in time and leaves n leading NaN; a negative n moves them back
// and leaves trailing NaN.
func Shift(values []float64, n int) []float64 {
	out := series.NaN(len(values))

	for i := range out {
		src := i - n
		if src >= 0 && src < len(values) {
			out[i] = values[src]
		}
	}

	return out
}
