package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

func (suite *IndicatorTestSuite) TestIndicatorTypeConstants() {
	suite.Equal(IndicatorType("ma"), IndicatorTypeMA)
	suite.Equal(IndicatorType("ema"), IndicatorTypeEMA)
	suite.Equal(IndicatorType("rsi"), IndicatorTypeRSI)
	suite.Equal(IndicatorType("dmi"), IndicatorTypeDMI)
	suite.Equal(IndicatorType("stochastic_oscillator"), IndicatorTypeStochastic)
	suite.Equal(IndicatorType("stochastic_momentum_index"), IndicatorTypeSMI)
	suite.Equal(IndicatorType("bollinger_bands"), IndicatorTypeBollingerBands)
	suite.Equal(IndicatorType("trends_meter"), IndicatorTypeTrendsMeter)
	suite.Equal(IndicatorType("ichimoku"), IndicatorTypeIchimoku)
	suite.Equal(IndicatorType("parabolic_sar"), IndicatorTypeParabolicSAR)
	suite.Equal(IndicatorType("renko"), IndicatorTypeRenko)
	suite.Equal(IndicatorType("kagi"), IndicatorTypeKagi)
	suite.Equal(IndicatorType("entry_exit_signals"), IndicatorTypeEntryExitSignals)
}

func (suite *IndicatorTestSuite) TestDefaults() {
	ichimoku := DefaultIchimokuParams()
	suite.Equal(9, ichimoku.Tenkan)
	suite.Equal(26, ichimoku.Kijun)
	suite.Equal(52, ichimoku.Senkou)

	sar := DefaultSARParams()
	suite.Equal(0.02, sar.Start)
	suite.Equal(0.02, sar.Increment)
	suite.Equal(0.2, sar.Max)

	signal := DefaultSignalParams()
	suite.Equal(PriceFieldClose, signal.Field)
	suite.Equal(20, signal.SMAPeriod)
}
