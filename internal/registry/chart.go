package registry

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-ta/internal/chart"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// Renko exposes Renko bricks as two event lines: price and direction.
type Renko struct {
	brickSize float64
	field     optional.Option[types.PriceField]
}

func NewRenko() Indicator {
	return &Renko{brickSize: 1.0, field: optional.None[types.PriceField]()}
}

func (r *Renko) Name() types.IndicatorType {
	return types.IndicatorTypeRenko
}

// Config expects brickSize (float64) and an optional price field.
func (r *Renko) Config(params ...any) error {
	if err := expectParams(params, 1, 2, "1 parameter: brickSize (float64), and an optional field (string)"); err != nil {
		return err
	}

	brickSize, err := positiveFloatParam(params, 0, "brickSize", errors.ErrCodeInvalidBrickSize)
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 1)
	if err != nil {
		return err
	}

	r.brickSize = brickSize
	r.field = field

	return nil
}

func (r *Renko) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(r.field))
	if err != nil {
		return Result{}, err
	}

	bricks, err := chart.Renko(prices, r.brickSize)
	if err != nil {
		return Result{}, err
	}

	levels := make([]float64, len(bricks))
	directions := make([]float64, len(bricks))

	for i, brick := range bricks {
		levels[i] = brick.Price
		directions[i] = float64(brick.Direction)
	}

	return newResult(r.Name(), columns, event("price", levels, nil), event("direction", directions, nil)), nil
}

// Kagi exposes Kagi turning points as two event lines: price and direction
// (+1 yang, -1 yin).
type Kagi struct {
	reversalAmount float64
	field          optional.Option[types.PriceField]
}

func NewKagi() Indicator {
	return &Kagi{reversalAmount: 1.0, field: optional.None[types.PriceField]()}
}

func (k *Kagi) Name() types.IndicatorType {
	return types.IndicatorTypeKagi
}

// Config expects reversalAmount (float64) and an optional price field.
func (k *Kagi) Config(params ...any) error {
	if err := expectParams(params, 1, 2, "1 parameter: reversalAmount (float64), and an optional field (string)"); err != nil {
		return err
	}

	reversalAmount, err := positiveFloatParam(params, 0, "reversalAmount", errors.ErrCodeInvalidReversalAmount)
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 1)
	if err != nil {
		return err
	}

	k.reversalAmount = reversalAmount
	k.field = field

	return nil
}

func (k *Kagi) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(k.field))
	if err != nil {
		return Result{}, err
	}

	result, err := chart.Kagi(prices, k.reversalAmount)
	if err != nil {
		return Result{}, err
	}

	directions := make([]float64, len(result.Directions))
	for i, direction := range result.Directions {
		directions[i] = 1
		if direction == types.KagiYin {
			directions[i] = -1
		}
	}

	return newResult(k.Name(), columns, event("price", result.Prices, nil), event("direction", directions, nil)), nil
}

// ImportantLevels exposes local extrema as resistance and support event lines
// plus three single-value summary lines.
type ImportantLevels struct {
	window int
	field  optional.Option[types.PriceField]
}

func NewImportantLevels() Indicator {
	return &ImportantLevels{window: chart.DefaultLevelWindow, field: optional.None[types.PriceField]()}
}

func (l *ImportantLevels) Name() types.IndicatorType {
	return types.IndicatorTypeImportantLevels
}

// Config expects window (int) and an optional price field.
func (l *ImportantLevels) Config(params ...any) error {
	if err := expectParams(params, 1, 2, "1 parameter: window (int), and an optional field (string)"); err != nil {
		return err
	}

	window, err := intParam(params, 0, "window")
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 1)
	if err != nil {
		return err
	}

	l.window = window
	l.field = field

	return nil
}

func (l *ImportantLevels) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(l.field))
	if err != nil {
		return Result{}, err
	}

	levels, err := chart.ExtractImportantLevels(prices, l.window)
	if err != nil {
		return Result{}, err
	}

	return newResult(l.Name(), columns,
		levelLine("resistance", levels.Resistances),
		levelLine("support", levels.Supports),
		event("highest_resistance", []float64{levels.HighestResistance}, nil),
		event("lowest_support", []float64{levels.LowestSupport}, nil),
		event("average_pivot", []float64{levels.AveragePivot}, nil),
	), nil
}

func levelLine(name string, levels []types.Level) types.Line {
	prices := make([]float64, len(levels))
	index := make([]int, len(levels))

	for i, level := range levels {
		prices[i] = level.Price
		index[i] = level.Index
	}

	return event(name, prices, index)
}

// SupportResistance exposes frequently hit prices as price and occurrences lines.
type SupportResistance struct {
	minOccurrences int
	field          optional.Option[types.PriceField]
}

func NewSupportResistance() Indicator {
	return &SupportResistance{minOccurrences: 2, field: optional.None[types.PriceField]()}
}

func (s *SupportResistance) Name() types.IndicatorType {
	return types.IndicatorTypeSupportResistance
}

// Config expects minOccurrences (int) and an optional price field.
func (s *SupportResistance) Config(params ...any) error {
	if err := expectParams(params, 1, 2, "1 parameter: minOccurrences (int), and an optional field (string)"); err != nil {
		return err
	}

	minOccurrences, err := intParam(params, 0, "minOccurrences")
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 1)
	if err != nil {
		return err
	}

	s.minOccurrences = minOccurrences
	s.field = field

	return nil
}

func (s *SupportResistance) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(s.field))
	if err != nil {
		return Result{}, err
	}

	levels, err := chart.SupportResistance(prices, s.minOccurrences)
	if err != nil {
		return Result{}, err
	}

	values := make([]float64, len(levels))
	occurrences := make([]float64, len(levels))

	for i, level := range levels {
		values[i] = level.Price
		occurrences[i] = float64(level.Occurrences)
	}

	return newResult(s.Name(), columns, event("price", values, nil), event("occurrences", occurrences, nil)), nil
}
