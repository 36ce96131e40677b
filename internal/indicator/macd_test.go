package indicator_test

import (
	"testing"

	"github.com/rxtech-lab/argo-ta/internal/indicator"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MACDTestSuite struct {
	suite.Suite
}

func TestMACDSuite(t *testing.T) {
	suite.Run(t, new(MACDTestSuite))
}

func (suite *MACDTestSuite) TestLines() {
	closes := generatedColumns(400, 31).Close

	result, err := indicator.MACD(closes, 12, 26, 9)
	suite.NoError(err)

	fast, _ := indicator.EMA(closes, 12)
	slow, _ := indicator.EMA(closes, 26)

	assertWarmup(&suite.Suite, result.MACD, 25)
	assertWarmup(&suite.Suite, result.Signal, 33)
	assertWarmup(&suite.Suite, result.Histogram, 33)

	for i := 25; i < len(closes); i++ {
		suite.InDelta(fast[i]-slow[i], result.MACD[i], 1e-12)
	}

	for i := 33; i < len(closes); i++ {
		suite.InDelta(result.MACD[i]-result.Signal[i], result.Histogram[i], 1e-12)
	}
}

func (suite *MACDTestSuite) TestValidation() {
	closes := []float64{1, 2, 3}

	_, err := indicator.MACD(closes, 26, 12, 9)
	suite.True(errors.IsInvalidParameter(err))
	suite.Contains(err.Error(), "less than slow period")

	_, err = indicator.MACD(closes, 0, 12, 9)
	suite.True(errors.IsInvalidParameter(err))

	_, err = indicator.MACD(closes, 12, 26, 0)
	suite.Equal("Signal period must be greater than 0.", err.Error())
}
