package chart

import (
	"testing"

	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type KagiTestSuite struct {
	suite.Suite
}

func TestKagiSuite(t *testing.T) {
	suite.Run(t, new(KagiTestSuite))
}

func (suite *KagiTestSuite) TestEmptyPrices() {
	_, err := Kagi([]float64{}, 1.0)
	suite.Error(err)
	suite.True(errors.IsInvalidInput(err))
	suite.Equal("Prices vector must not be empty.", err.Error())
}

func (suite *KagiTestSuite) TestInvalidReversalAmount() {
	_, err := Kagi([]float64{1, 2, 3}, -1.0)
	suite.Error(err)
	suite.True(errors.IsInvalidParameter(err))
	suite.Equal("Reversal amount must be greater than 0.", err.Error())

	_, err = Kagi([]float64{1, 2, 3}, 0)
	suite.Error(err)
}

func (suite *KagiTestSuite) TestTurningPoints() {
	prices := []float64{10, 10.5, 11, 12, 11.5, 10.8, 10, 10.4, 11.2, 13, 12.5}

	result, err := Kagi(prices, 1.0)
	suite.NoError(err)
	suite.Equal([]float64{12, 10, 13}, result.Prices)
	suite.Equal([]types.KagiDirection{types.KagiYang, types.KagiYin, types.KagiYang}, result.Directions)
}

func (suite *KagiTestSuite) TestStartsFalling() {
	result, err := Kagi([]float64{20, 18, 17, 19, 16}, 2.0)
	suite.NoError(err)
	suite.Equal([]float64{17, 19, 16}, result.Prices)
	suite.Equal([]types.KagiDirection{types.KagiYin, types.KagiYang, types.KagiYin}, result.Directions)
}

func (suite *KagiTestSuite) TestNoMoveYieldsSinglePoint() {
	result, err := Kagi([]float64{5, 5.2, 4.9}, 1.0)
	suite.NoError(err)
	suite.Equal([]float64{5}, result.Prices)
	suite.Equal([]types.KagiDirection{types.KagiYang}, result.Directions)
}

func (suite *KagiTestSuite) TestParallelAndNonEmpty() {
	prices := make([]float64, 300)
	for i := range prices {
		prices[i] = 100 + float64((i*37)%23) - float64((i*11)%17)
	}

	result, err := Kagi(prices, 3.0)
	suite.NoError(err)
	suite.NotEmpty(result.Prices)
	suite.Len(result.Directions, len(result.Prices))
	suite.Contains(result.Directions, types.KagiYang)
	suite.Contains(result.Directions, types.KagiYin)

	for i := 1; i < len(result.Directions); i++ {
		suite.NotEqual(result.Directions[i-1], result.Directions[i], "segments alternate")
	}
}
