package chart

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// kagiState is the accumulator threaded through the Kagi pass. An empty
// direction means no move of the reversal amount has happened yet.
type kagiState struct {
	direction types.KagiDirection
	anchor    float64
	extreme   float64
	result    types.KagiResult
}

func (s *kagiState) emit(price float64, direction types.KagiDirection) {
	s.result.Prices = append(s.result.Prices, price)
	s.result.Directions = append(s.result.Directions, direction)
}

// Kagi returns the Kagi line for prices as one point per segment: the price
// the segment ends at and whether it is rising (yang) or falling (yin).
//
// The first move of at least reversalAmount away from the first price sets
// the direction. The line then extends while price keeps going, and turns only
// when price comes back from the extreme by reversalAmount or more, emitting the
// extreme. The last, still open segment is emitted at its extreme. A series that
// never moves by reversalAmount yields a single yang point at its first price.
func Kagi(prices []float64, reversalAmount float64) (types.KagiResult, error) {
	if len(prices) == 0 {
		return types.KagiResult{}, errors.New(errors.ErrCodeEmptyInput, emptyPricesMessage)
	}

	if !(reversalAmount > 0) {
		return types.KagiResult{}, errors.New(errors.ErrCodeInvalidReversalAmount, "Reversal amount must be greater than 0.")
	}

	var state *kagiState

	for _, p := range prices {
		if math.IsNaN(p) {
			continue
		}

		if state == nil {
			state = &kagiState{anchor: p, extreme: p}

			continue
		}

		switch state.direction {
		case "":
			if p-state.anchor >= reversalAmount {
				state.direction, state.extreme = types.KagiYang, p
			} else if state.anchor-p >= reversalAmount {
				state.direction, state.extreme = types.KagiYin, p
			}
		case types.KagiYang:
			if p > state.extreme {
				state.extreme = p
			} else if state.extreme-p >= reversalAmount {
				state.emit(state.extreme, types.KagiYang)
				state.direction, state.extreme = types.KagiYin, p
			}
		case types.KagiYin:
			if p < state.extreme {
				state.extreme = p
			} else if p-state.extreme >= reversalAmount {
				state.emit(state.extreme, types.KagiYin)
				state.direction, state.extreme = types.KagiYang, p
			}
		}
	}

	if state == nil {
		return types.KagiResult{Prices: []float64{}, Directions: []types.KagiDirection{}}, nil
	}

	if state.direction == "" {
		state.emit(state.anchor, types.KagiYang)
	} else {
		state.emit(state.extreme, state.direction)
	}

	return state.result, nil
}
