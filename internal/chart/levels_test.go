package chart

import (
	"testing"

	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type LevelsTestSuite struct {
	suite.Suite
}

func TestLevelsSuite(t *testing.T) {
	suite.Run(t, new(LevelsTestSuite))
}

func (suite *LevelsTestSuite) TestValidation() {
	_, err := ExtractImportantLevels(nil, DefaultLevelWindow)
	suite.True(errors.IsInvalidInput(err))

	_, err = ExtractImportantLevels([]float64{1, 2, 3}, 0)
	suite.True(errors.IsInvalidParameter(err))
}

func (suite *LevelsTestSuite) TestPeaksAndTroughs() {
	values := []float64{5, 6, 7, 8, 9, 10, 9, 8, 7, 6, 5, 4, 3, 4, 5, 6, 7}

	levels, err := ExtractImportantLevels(values, 2)
	suite.NoError(err)

	suite.Equal([]types.Level{{Index: 5, Price: 10}}, levels.Resistances)
	suite.Equal([]types.Level{{Index: 12, Price: 3}}, levels.Supports)
	suite.Equal(10.0, levels.HighestResistance)
	suite.Equal(3.0, levels.LowestSupport)
	suite.InDelta(6.5, levels.AveragePivot, 1e-12)
}

func (suite *LevelsTestSuite) TestEdgesAreNeverLevels() {
	values := []float64{100, 1, 2, 3, 4, 5, 6}

	levels, err := ExtractImportantLevels(values, 2)
	suite.NoError(err)
	suite.Empty(levels.Resistances)
	suite.Empty(levels.Supports)
	suite.Equal(100.0, levels.HighestResistance)
	suite.Equal(1.0, levels.LowestSupport)
	suite.InDelta(121.0/7, levels.AveragePivot, 1e-12)
}

func (suite *LevelsTestSuite) TestShortSeriesFallsBack() {
	levels, err := ExtractImportantLevels([]float64{3, 1, 2}, DefaultLevelWindow)
	suite.NoError(err)
	suite.Empty(levels.Resistances)
	suite.Equal(3.0, levels.HighestResistance)
	suite.Equal(1.0, levels.LowestSupport)
	suite.InDelta(2.0, levels.AveragePivot, 1e-12)
}

func (suite *LevelsTestSuite) TestSupportResistance() {
	values := []float64{10.001, 10.004, 9.996, 11.5, 11.499, 12, 10}

	levels, err := SupportResistance(values, 2)
	suite.NoError(err)
	suite.Equal([]types.PriceLevel{
		{Price: 10, Occurrences: 4},
		{Price: 11.5, Occurrences: 2},
	}, levels)

	levels, err = SupportResistance(values, 5)
	suite.NoError(err)
	suite.Empty(levels)
}

func (suite *LevelsTestSuite) TestSupportResistanceValidation() {
	_, err := SupportResistance(nil, 2)
	suite.True(errors.IsInvalidInput(err))

	_, err = SupportResistance([]float64{1}, 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidThreshold))
}
