package indicator_test

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/rxtech-lab/argo-ta/internal/indicator"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BollingerBandsTestSuite struct {
	suite.Suite
}

func TestBollingerBandsSuite(t *testing.T) {
	suite.Run(t, new(BollingerBandsTestSuite))
}

func (suite *BollingerBandsTestSuite) TestInvalidParameters() {
	closes := []float64{1, 2, 3}

	_, err := indicator.BollingerBands(closes, 0, 2)
	suite.True(errors.IsInvalidParameter(err))

	_, err = indicator.BollingerBands(closes, 2, 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidMultiplier))
	suite.Equal("Multiplier must be greater than 0.", err.Error())

	_, err = indicator.BollingerBands(closes, 2, -1.5)
	suite.Error(err)
}

func (suite *BollingerBandsTestSuite) TestKnownValues() {
	result, err := indicator.BollingerBands([]float64{1, 3, 5}, 2, 2)
	suite.NoError(err)

	suite.InDelta(2.0, result.Middle[1], 1e-12)
	suite.InDelta(4.0, result.Upper[1], 1e-12)
	suite.InDelta(0.0, result.Lower[1], 1e-12)
	suite.InDelta(6.0, result.Upper[2], 1e-12)
}

func (suite *BollingerBandsTestSuite) TestMatchesTalib() {
	closes := generatedColumns(800, 17).Close

	result, err := indicator.BollingerBands(closes, 20, 2)
	suite.NoError(err)
	assertWarmup(&suite.Suite, result.Middle, 19)
	assertWarmup(&suite.Suite, result.Upper, 19)
	assertWarmup(&suite.Suite, result.Lower, 19)

	upper, middle, lower := talib.BBands(closes, 20, 2, 2, talib.SMA)
	assertOracle(&suite.Suite, upper, result.Upper, 19, 1e-7)
	assertOracle(&suite.Suite, middle, result.Middle, 19, 1e-9)
	assertOracle(&suite.Suite, lower, result.Lower, 19, 1e-7)
}
