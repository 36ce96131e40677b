// Package chart rebuilds price action as Renko bricks, Kagi lines and
// support/resistance levels. Outputs are event sequences whose length depends
// on the data, not on the number of bars.
package chart

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/shopspring/decimal"
)

const emptyPricesMessage = "Prices vector must not be empty."

// renkoState is the accumulator threaded through the Renko pass.
type renkoState struct {
	reference decimal.Decimal
	bricks    []types.RenkoBrick
}

// Renko returns the Renko bricks for prices.
//
// The first price is emitted as the origin brick. After that, every move of at
// least one brick size away from the reference emits one brick per full brick
// spanned, each advancing the reference by exactly one brick. Reference levels
// are kept in decimal so brick prices stay exact multiples of brickSize from
// the origin. Non-finite prices are skipped.
func Renko(prices []float64, brickSize float64) ([]types.RenkoBrick, error) {
	if len(prices) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, emptyPricesMessage)
	}

	if !(brickSize > 0) || math.IsInf(brickSize, 1) {
		return nil, errors.New(errors.ErrCodeInvalidBrickSize, "Brick size must be greater than 0.")
	}

	brick := decimal.NewFromFloat(brickSize)

	var state *renkoState

	for _, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}

		price := decimal.NewFromFloat(p)
		if state == nil {
			state = &renkoState{reference: price}
			state.bricks = append(state.bricks, types.RenkoBrick{Price: p, Direction: types.RenkoOrigin})

			continue
		}

		for price.GreaterThanOrEqual(state.reference.Add(brick)) {
			state.reference = state.reference.Add(brick)
			state.bricks = append(state.bricks, types.RenkoBrick{Price: state.reference.InexactFloat64(), Direction: types.RenkoUp})
		}

		for price.LessThanOrEqual(state.reference.Sub(brick)) {
			state.reference = state.reference.Sub(brick)
			state.bricks = append(state.bricks, types.RenkoBrick{Price: state.reference.InexactFloat64(), Direction: types.RenkoDown})
		}
	}

	if state == nil {
		return []types.RenkoBrick{}, nil
	}

	return state.bricks, nil
}
