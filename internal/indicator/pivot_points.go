package indicator

import (
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
)

// PivotPoints returns classic floor pivots for each bar:
//
//	P = (H + L + C) / 3
//	R1 = 2P - L, R2 = P + (H - L)
//	S1 = 2P - H, S2 = P - (H - L)
func PivotPoints(columns series.Columns) (types.PivotPointsResult, error) {
	if err := columns.Validate(); err != nil {
		return types.PivotPointsResult{}, err
	}

	n := columns.Len()
	result := types.PivotPointsResult{
		Pivot: make([]float64, n),
		R1:    make([]float64, n),
		R2:    make([]float64, n),
		S1:    make([]float64, n),
		S2:    make([]float64, n),
	}

	for i := 0; i < n; i++ {
		h, l, c := columns.High[i], columns.Low[i], columns.Close[i]
		p := (h + l + c) / 3
		span := h - l

		result.Pivot[i] = p
		result.R1[i] = 2*p - l
		result.R2[i] = p + span
		result.S1[i] = 2*p - h
		result.S2[i] = p - span
	}

	return result, nil
}
