package registry

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-ta/internal/indicator"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// RSI indicator implements Relative Strength Index calculation.
type RSI struct {
	period int
	field  optional.Option[types.PriceField]
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{period: 14, field: optional.None[types.PriceField]()}
}

func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config expects period (int) and an optional price field.
func (r *RSI) Config(params ...any) error {
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

	r.period = period
	r.field = field

	return nil
}

func (r *RSI) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(r.field))
	if err != nil {
		return Result{}, err
	}

	values, err := indicator.RSI(prices, r.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(r.Name(), columns, aligned("rsi", values)), nil
}

// DMI exposes the directional movement lines. The adx line is the one
// returned by indicator.DirectionalMovementIndex.
type DMI struct {
	period int
}

func NewDMI() Indicator {
	return &DMI{period: 14}
}

func (d *DMI) Name() types.IndicatorType {
	return types.IndicatorTypeDMI
}

// Config expects period (int).
func (d *DMI) Config(params ...any) error {
	if err := expectParams(params, 1, 1, "1 parameter: period (int)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	d.period = period

	return nil
}

func (d *DMI) Compute(columns series.Columns) (Result, error) {
	result, err := indicator.DirectionalMovement(columns, d.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(d.Name(), columns,
		aligned("plus_di", result.PlusDI),
		aligned("minus_di", result.MinusDI),
		aligned("dx", result.DX),
		aligned("adx", result.ADX),
	), nil
}

// Stochastic implements the %K Stochastic Oscillator.
type Stochastic struct {
	period int
}

func NewStochastic() Indicator {
	return &Stochastic{period: 14}
}

func (s *Stochastic) Name() types.IndicatorType {
	return types.IndicatorTypeStochastic
}

// Config expects period (int).
func (s *Stochastic) Config(params ...any) error {
	if err := expectParams(params, 1, 1, "1 parameter: period (int)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	s.period = period

	return nil
}

func (s *Stochastic) Compute(columns series.Columns) (Result, error) {
	values, err := indicator.StochasticOscillator(columns, s.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(s.Name(), columns, aligned("k", values)), nil
}

// SMI implements the Stochastic Momentum Index.
type SMI struct {
	periodL   int
	periodH   int
	smoothing int
}

func NewSMI() Indicator {
	return &SMI{periodL: 10, periodH: 10, smoothing: 3}
}

func (s *SMI) Name() types.IndicatorType {
	return types.IndicatorTypeSMI
}

// Config expects periodL (int), periodH (int), smoothing (int).
func (s *SMI) Config(params ...any) error {
	if err := expectParams(params, 3, 3, "3 parameters: periodL (int), periodH (int), smoothing (int)"); err != nil {
		return err
	}

	periodL, err := intParam(params, 0, "periodL")
	if err != nil {
		return err
	}

	periodH, err := intParam(params, 1, "periodH")
	if err != nil {
		return err
	}

	smoothing, err := intParam(params, 2, "smoothing")
	if err != nil {
		return err
	}

	s.periodL = periodL
	s.periodH = periodH
	s.smoothing = smoothing

	return nil
}

func (s *SMI) Compute(columns series.Columns) (Result, error) {
	values, err := indicator.StochasticMomentumIndex(columns, s.periodL, s.periodH, s.smoothing)
	if err != nil {
		return Result{}, err
	}

	return newResult(s.Name(), columns, aligned("smi", values)), nil
}

// BollingerBands implements the Indicator interface for Bollinger Bands.
type BollingerBands struct {
	period     int     // Number of periods for moving average
	multiplier float64 // Number of standard deviations
	field      optional.Option[types.PriceField]
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		period:     20,
		multiplier: 2.0,
		field:      optional.None[types.PriceField](),
	}
}

func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config expects period (int), multiplier (float64) and an optional price field.
func (bb *BollingerBands) Config(params ...any) error {
	if err := expectParams(params, 2, 3, "2 parameters: period (int), multiplier (float64), and an optional field (string)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	multiplier, err := positiveFloatParam(params, 1, "multiplier", errors.ErrCodeInvalidMultiplier)
	if err != nil {
		return err
	}

	field, err := fieldParam(params, 2)
	if err != nil {
		return err
	}

	bb.period = period
	bb.multiplier = multiplier
	bb.field = field

	return nil
}

func (bb *BollingerBands) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(bb.field))
	if err != nil {
		return Result{}, err
	}

	bands, err := indicator.BollingerBands(prices, bb.period, bb.multiplier)
	if err != nil {
		return Result{}, err
	}

	return newResult(bb.Name(), columns,
		aligned("upper", bands.Upper),
		aligned("middle", bands.Middle),
		aligned("lower", bands.Lower),
	), nil
}

// TrendsMeter scores trend strength on [-100, 100].
type TrendsMeter struct {
	period int
}

func NewTrendsMeter() Indicator {
	return &TrendsMeter{period: 14}
}

func (t *TrendsMeter) Name() types.IndicatorType {
	return types.IndicatorTypeTrendsMeter
}

// Config expects period (int).
func (t *TrendsMeter) Config(params ...any) error {
	if err := expectParams(params, 1, 1, "1 parameter: period (int)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	t.period = period

	return nil
}

func (t *TrendsMeter) Compute(columns series.Columns) (Result, error) {
	values, err := indicator.TrendsMeter(columns, t.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(t.Name(), columns, aligned("trend", values)), nil
}

// MACD implements Moving Average Convergence Divergence.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
	field        optional.Option[types.PriceField]
}

func NewMACD() Indicator {
	return &MACD{
		fastPeriod:   12,
		slowPeriod:   26,
		signalPeriod: 9,
		field:        optional.None[types.PriceField](),
	}
}

func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config expects fastPeriod (int), slowPeriod (int), signalPeriod (int) and an optional price field.
func (m *MACD) Config(params ...any) error {
	if err := expectParams(params, 3, 4, "3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int), and an optional field (string)"); err != nil {
		return err
	}

	fastPeriod, err := intParam(params, 0, "fastPeriod")
	if err != nil {
		return err
	}

	slowPeriod, err := intParam(params, 1, "slowPeriod")
	if err != nil {
		return err
	}

	signalPeriod, err := intParam(params, 2, "signalPeriod")
	if err != nil {
		return err
	}

	if fastPeriod >= slowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod must be less than slowPeriod, got %d and %d", fastPeriod, slowPeriod)
	}

	field, err := fieldParam(params, 3)
	if err != nil {
		return err
	}

	m.fastPeriod = fastPeriod
	m.slowPeriod = slowPeriod
	m.signalPeriod = signalPeriod
	m.field = field

	return nil
}

func (m *MACD) Compute(columns series.Columns) (Result, error) {
	prices, err := columns.Field(fieldOrClose(m.field))
	if err != nil {
		return Result{}, err
	}

	result, err := indicator.MACD(prices, m.fastPeriod, m.slowPeriod, m.signalPeriod)
	if err != nil {
		return Result{}, err
	}

	return newResult(m.Name(), columns,
		aligned("macd", result.MACD),
		aligned("signal", result.Signal),
		aligned("histogram", result.Histogram),
	), nil
}

// ATR implements Average True Range with Wilder smoothing.
type ATR struct {
	period int
}

func NewATR() Indicator {
	return &ATR{period: 14}
}

func (a *ATR) Name() types.IndicatorType {
	return types.IndicatorTypeATR
}

// Config expects period (int).
func (a *ATR) Config(params ...any) error {
	if err := expectParams(params, 1, 1, "1 parameter: period (int)"); err != nil {
		return err
	}

	period, err := intParam(params, 0, "period")
	if err != nil {
		return err
	}

	a.period = period

	return nil
}

func (a *ATR) Compute(columns series.Columns) (Result, error) {
	values, err := indicator.ATR(columns, a.period)
	if err != nil {
		return Result{}, err
	}

	return newResult(a.Name(), columns, aligned("atr", values)), nil
}
