package registry

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-ta/internal/indicator"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
)

// MA indicator implements Simple Moving Average calculation.
type MA struct {
	period int
	field  optional.Option[types.PriceField]
}

// NewMA creates a new MA indicator with default configuration.
func NewMA() Indicator {
	return &MA{
		period: 20, // Default period
		field:  optional.None[types.PriceField](),
	}
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return types.IndicatorTypeMA
}

// Config expects period (int) and an optional price field.
func (m *MA) Config(params ...any) error {
	if err := expectParams(params, 1, 2, "1 parameter: period (int), and an optional field (string)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 1)
	if err != nil {
		return err
	}

	m.period = period
	m.field = field

	return nil
}

// Compute implements Indicator.
func (m *MA) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(m.field))
	if err != nil {
		return Result{}, err
	}

	values, err := indicator.SMA(prices, m.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(m.Name(), columns, aligned("ma", values)), nil
}

// EMA indicator implements Exponential Moving Average calculation.
type EMA struct {
	period int
	field  optional.Option[types.PriceField]
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() Indicator {
	return &EMA{
		period: 20,
		field:  optional.None[types.PriceField](),
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config expects period (int) and an optional price field.
func (e *EMA) Config(params ...any) error {
	if err := expectParams(params, 1, 2, "1 parameter: period (int), and an optional field (string)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 1)
	if err != nil {
		return err
	}

	e.period = period
	e.field = field

	return nil
}

// Compute implements Indicator.
func (e *EMA) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(e.field))
	if err != nil {
		return Result{}, err
	}

	values, err := indicator.EMA(prices, e.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(e.Name(), columns, aligned("ema", values)), nil
}
