package chart

import (
	"math"
	"sort"

	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/internal/window"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultLevelWindow is the number of neighbours on each side a level must dominate.
const DefaultLevelWindow = 5

// ExtractImportantLevels finds local extrema of values. Index i is a resistance
// when values[i] is the maximum of values[i-w .. i+w] and a support when it is the
// minimum. The first and last w indices are never levels.
//
// HighestResistance, LowestSupport and AveragePivot fall back to the global
// maximum, minimum and mean when no resistance, support or level is found.
func ExtractImportantLevels(values []float64, w int) (types.ImportantLevels, error) {
	if len(values) == 0 {
		return types.ImportantLevels{}, errors.New(errors.ErrCodeEmptyInput, emptyPricesMessage)
	}

	if w <= 0 {
		return types.ImportantLevels{}, errors.New(errors.ErrCodeInvalidWindow, "Window must be greater than 0.")
	}

	highest, err := window.Max(values, 2*w+1)
	if err != nil {
		return types.ImportantLevels{}, err
	}

	lowest, err := window.Min(values, 2*w+1)
	if err != nil {
		return types.ImportantLevels{}, err
	}

	// rolling windows end at i; move them back so they are centred on i
	highest = window.Shift(highest, -w)
	lowest = window.Shift(lowest, -w)

	levels := types.ImportantLevels{Supports: []types.Level{}, Resistances: []types.Level{}}

	pivotSum, pivotCount := 0.0, 0
	maxLevel, minLevel := math.Inf(-1), math.Inf(1)

	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}

		isResistance := v == highest[i]
		isSupport := v == lowest[i]

		if isResistance {
			levels.Resistances = append(levels.Resistances, types.Level{Index: i, Price: v})
			maxLevel = math.Max(maxLevel, v)
		}

		if isSupport {
			levels.Supports = append(levels.Supports, types.Level{Index: i, Price: v})
			minLevel = math.Min(minLevel, v)
		}

		if isResistance || isSupport {
			pivotSum += v
			pivotCount++
		}
	}

	globalMax, globalMin, globalMean := summary(values)

	levels.HighestResistance = globalMax
	if len(levels.Resistances) > 0 {
		levels.HighestResistance = maxLevel
	}

	levels.LowestSupport = globalMin
	if len(levels.Supports) > 0 {
		levels.LowestSupport = minLevel
	}

	levels.AveragePivot = globalMean
	if pivotCount > 0 {
		levels.AveragePivot = pivotSum / float64(pivotCount)
	}

	return levels, nil
}

func summary(values []float64) (float64, float64, float64) {
	maxValue, minValue := math.Inf(-1), math.Inf(1)
	sum, count := 0.0, 0

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		maxValue = math.Max(maxValue, v)
		minValue = math.Min(minValue, v)
		sum += v
		count++
	}

	if count == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	return maxValue, minValue, sum / float64(count)
}

// SupportResistance rounds values to cents and returns every price hit at
// least minOccurrences times, sorted by price.
func SupportResistance(values []float64, minOccurrences int) ([]types.PriceLevel, error) {
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, emptyPricesMessage)
	}

	if minOccurrences <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidThreshold, "Minimum occurrences must be greater than 0.")
	}

	counts := make(map[string]int)
	prices := make(map[string]decimal.Decimal)

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		rounded := decimal.NewFromFloat(v).Round(2)
		key := rounded.StringFixed(2)
		counts[key]++
		prices[key] = rounded
	}

	levels := make([]types.PriceLevel, 0)

	for key, count := range counts {
		if count < minOccurrences {
			continue
		}

		levels = append(levels, types.PriceLevel{Price: prices[key].InexactFloat64(), Occurrences: count})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Price < levels[j].Price
	})

	return levels, nil
}
