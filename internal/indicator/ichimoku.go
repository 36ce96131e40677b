package indicator

import (
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/internal/window"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// Ichimoku returns the five Ichimoku Kinko Hyo lines, all aligned to the input.
//
// The leading spans are not resized for their forward projection. Instead the
// first Kijun positions of both spans are NaN. The lagging span holds
// close[i+Kijun] and is NaN for the last Kijun bars.
func Ichimoku(columns series.Columns, params types.IchimokuParams) (types.IchimokuResult, error) {
	if columns.Len() == 0 {
		return types.IchimokuResult{}, errors.New(errors.ErrCodeEmptyInput, "Prices vector must not be empty.")
	}

	if err := validateNamedPeriod("Tenkan", params.Tenkan); err != nil {
		return types.IchimokuResult{}, err
	}

	if err := validateNamedPeriod("Kijun", params.Kijun); err != nil {
		return types.IchimokuResult{}, err
	}

	if err := validateNamedPeriod("Senkou", params.Senkou); err != nil {
		return types.IchimokuResult{}, err
	}

	if err := columns.Validate(); err != nil {
		return types.IchimokuResult{}, err
	}

	tenkan, err := midline(columns.High, columns.Low, params.Tenkan, params.Tenkan)
	if err != nil {
		return types.IchimokuResult{}, err
	}

	kijun, err := midline(columns.High, columns.Low, params.Kijun, params.Kijun)
	if err != nil {
		return types.IchimokuResult{}, err
	}

	spanB, err := midline(columns.High, columns.Low, params.Senkou, params.Senkou)
	if err != nil {
		return types.IchimokuResult{}, err
	}

	n := columns.Len()
	spanA := series.NaN(n)

	for i := params.Kijun; i < n; i++ {
		spanA[i] = (tenkan[i] + kijun[i]) / 2
	}

	for i := 0; i < params.Kijun && i < n; i++ {
		spanB[i] = nan
	}

	return types.IchimokuResult{
		TenkanSen:   tenkan,
		KijunSen:    kijun,
		SenkouSpanA: spanA,
		SenkouSpanB: spanB,
		ChikouSpan:  window.Shift(columns.Close, -params.Kijun),
	}, nil
}
