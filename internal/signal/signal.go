// Package signal generates entry and exit signals from a moving-average spread
// measured against an ATR band.
package signal

import (
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-ta/internal/indicator"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// EntryExitSignals labels every bar entry, exit or none.
//
// The spread d = EMA - SMA is compared with band = Threshold * ATR. A bar is an
// entry when d is above band while not long, and an exit when d is below
// -band while long, so entries and exits alternate starting with an entry.
// Bars before all three averages are defined are none.
func EntryExitSignals(columns series.Columns, params types.SignalParams) (types.SignalSeries, error) {
	if err := validate(params); err != nil {
		return types.SignalSeries{}, err
	}

	if err := columns.Validate(); err != nil {
		return types.SignalSeries{}, err
	}

	prices, err := columns.Field(params.Field)
	if err != nil {
		return types.SignalSeries{}, err
	}

	sma, err := indicator.SMA(prices, params.SMAPeriod)
	if err != nil {
		return types.SignalSeries{}, err
	}

	ema, err := indicator.EMA(prices, params.EMAPeriod)
	if err != nil {
		return types.SignalSeries{}, err
	}

	atr, err := indicator.ATR(columns, params.ATRPeriod)
	if err != nil {
		return types.SignalSeries{}, err
	}

	n := columns.Len()
	result := types.SignalSeries{
		Labels: make([]types.SignalType, n),
		Events: []types.Signal{},
	}

	long := false

	for i := 0; i < n; i++ {
		result.Labels[i] = types.SignalTypeNone

		if math.IsNaN(sma[i]) || math.IsNaN(ema[i]) || math.IsNaN(atr[i]) {
			continue
		}

		spread := ema[i] - sma[i]
		band := params.Threshold * atr[i]

		switch {
		case !long && spread > band:
			long = true
			result.Labels[i] = types.SignalTypeEntry
			result.Events = append(result.Events, types.Signal{
				Index:  i,
				Time:   columns.TimeAt(i),
				Type:   types.SignalTypeEntry,
				Price:  prices[i],
				Reason: fmt.Sprintf("ema-sma spread %.4f crossed above band %.4f", spread, band),
			})
		case long && spread < -band:
			long = false
			result.Labels[i] = types.SignalTypeExit
			result.Events = append(result.Events, types.Signal{
				Index:  i,
				Time:   columns.TimeAt(i),
				Type:   types.SignalTypeExit,
				Price:  prices[i],
				Reason: fmt.Sprintf("ema-sma spread %.4f crossed below band %.4f", spread, -band),
			})
		}
	}

	return result, nil
}

// WarmupLength is the number of leading bars that can never carry a signal.
func WarmupLength(params types.SignalParams) int {
	return max(params.SMAPeriod, params.EMAPeriod, params.ATRPeriod) - 1
}

func validate(params types.SignalParams) error {
	periods := []struct {
		name   string
		period int
	}{
		{"SMA", params.SMAPeriod},
		{"EMA", params.EMAPeriod},
		{"ATR", params.ATRPeriod},
	}

	for _, p := range periods {
		if p.period <= 0 {
			return errors.Newf(errors.ErrCodeInvalidPeriod, "%s period must be greater than 0.", p.name)
		}
	}

	if !(params.Threshold >= 0) {
		return errors.New(errors.ErrCodeInvalidThreshold, "Threshold must not be negative.")
	}

	return nil
}
