package registry

import (
	"sync"
	"testing"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/stretchr/testify/suite"
)

// stubIndicator is a minimal indicator for exercising the registry.
type stubIndicator struct {
	name types.IndicatorType
}

func (s *stubIndicator) Name() types.IndicatorType {
	return s.name
}

func (s *stubIndicator) Config(params ...any) error {
	return nil
}

func (s *stubIndicator) Compute(columns series.Columns) (Result, error) {
	return newResult(s.name, columns), nil
}

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestRegisterAndGet() {
	registry := NewIndicatorRegistry()

	indicator := &stubIndicator{name: types.IndicatorTypeRSI}
	suite.NoError(registry.RegisterIndicator(indicator))

	retrieved, err := registry.GetIndicator(types.IndicatorTypeRSI)
	suite.NoError(err)
	suite.Same(indicator, retrieved)
}

func (suite *RegistryTestSuite) TestRegisterDuplicate() {
	registry := NewIndicatorRegistry()
	suite.NoError(registry.RegisterIndicator(&stubIndicator{name: types.IndicatorTypeRSI}))

	err := registry.RegisterIndicator(&stubIndicator{name: types.IndicatorTypeRSI})
	suite.Error(err)
	suite.Contains(err.Error(), "already registered")
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlreadyExists))
}

func (suite *RegistryTestSuite) TestGetNotFound() {
	_, err := NewIndicatorRegistry().GetIndicator(types.IndicatorTypeRSI)
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestListIndicatorsSorted() {
	registry := NewIndicatorRegistry()
	suite.Empty(registry.ListIndicators())

	for _, name := range []types.IndicatorType{types.IndicatorTypeRSI, types.IndicatorTypeMACD, types.IndicatorTypeEMA} {
		suite.NoError(registry.RegisterIndicator(&stubIndicator{name: name}))
	}

	suite.Equal([]types.IndicatorType{
		types.IndicatorTypeEMA,
		types.IndicatorTypeMACD,
		types.IndicatorTypeRSI,
	}, registry.ListIndicators())
}

func (suite *RegistryTestSuite) TestRemoveIndicator() {
	registry := NewIndicatorRegistry()
	suite.NoError(registry.RegisterIndicator(&stubIndicator{name: types.IndicatorTypeRSI}))
	suite.NoError(registry.RemoveIndicator(types.IndicatorTypeRSI))

	_, err := registry.GetIndicator(types.IndicatorTypeRSI)
	suite.Error(err)

	err = registry.RemoveIndicator(types.IndicatorTypeRSI)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestConcurrentAccess() {
	registry := NewIndicatorRegistry()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()

			name := types.IndicatorType(string(rune('A' + idx)))
			_ = registry.RegisterIndicator(&stubIndicator{name: name})
			_, _ = registry.GetIndicator(name)
			_ = registry.ListIndicators()
		}(i)
	}

	wg.Wait()
	suite.Len(registry.ListIndicators(), 10)
}

func (suite *RegistryTestSuite) TestDefaultRegistry() {
	registry := NewDefaultRegistry()

	expected := []types.IndicatorType{
		types.IndicatorTypeMA,
		types.IndicatorTypeEMA,
		types.IndicatorTypeRSI,
		types.IndicatorTypeDMI,
		types.IndicatorTypeStochastic,
		types.IndicatorTypeSMI,
		types.IndicatorTypeBollingerBands,
		types.IndicatorTypeTrendsMeter,
		types.IndicatorTypeMACD,
		types.IndicatorTypeATR,
		types.IndicatorTypeIchimoku,
		types.IndicatorTypeParabolicSAR,
		types.IndicatorTypePivotPoints,
		types.IndicatorTypeRenko,
		types.IndicatorTypeKagi,
		types.IndicatorTypeImportantLevels,
		types.IndicatorTypeSupportResistance,
		types.IndicatorTypeEntryExitSignals,
	}
	suite.ElementsMatch(expected, registry.ListIndicators())

	for _, name := range expected {
		indicator, err := registry.GetIndicator(name)
		suite.Require().NoError(err)
		suite.Equal(name, indicator.Name())
	}
}
