package registry

import (
	"github.com/rxtech-lab/argo-ta/internal/indicator"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// Ichimoku exposes the five Ichimoku lines.
type Ichimoku struct {
	params types.IchimokuParams
}

func NewIchimoku() Indicator {
	return &Ichimoku{params: types.DefaultIchimokuParams()}
}

func (i *Ichimoku) Name() types.IndicatorType {
	return types.IndicatorTypeIchimoku
}

// Config expects tenkan (int), kijun (int), senkou (int).
func (i *Ichimoku) Config(params ...any) error {
	if err := expectParams(params, 3, 3, "3 parameters: tenkan (int), kijun (int), senkou (int)"); err != nil {
		return err
	}

	tenkan, err := intParam(params, 0, "tenkan")
	if err != nil {
		return err
	}

	kijun, err := intParam(params, 1, "kijun")
	if err != nil {
		return err
	}

	senkou, err := intParam(params, 2, "senkou")
	if err != nil {
		return err
	}

	i.params = types.IchimokuParams{Tenkan: tenkan, Kijun: kijun, Senkou: senkou}

	return nil
}

func (i *Ichimoku) Compute(columns series.Columns) (Result, error) {
	result, err := indicator.Ichimoku(columns, i.params)
	if err != nil {
		return Result{}, err
	}

	return newResult(i.Name(), columns,
		aligned("tenkan_sen", result.TenkanSen),
		aligned("kijun_sen", result.KijunSen),
		aligned("senkou_span_a", result.SenkouSpanA),
		aligned("senkou_span_b", result.SenkouSpanB),
		aligned("chikou_span", result.ChikouSpan),
	), nil
}

// ParabolicSAR exposes the stop-and-reverse line.
type ParabolicSAR struct {
	params types.SARParams
}

func NewParabolicSAR() Indicator {
	return &ParabolicSAR{params: types.DefaultSARParams()}
}

func (p *ParabolicSAR) Name() types.IndicatorType {
	return types.IndicatorTypeParabolicSAR
}

// Config expects start (float64), increment (float64), max (float64).
func (p *ParabolicSAR) Config(params ...any) error {
	if err := expectParams(params, 3, 3, "3 parameters: start (float64), increment (float64), max (float64)"); err != nil {
		return err
	}

	start, err := positiveFloatParam(params, 0, "start", errors.ErrCodeInvalidAccelerationFactor)
	if err != nil {
		return err
	}

	increment, err := positiveFloatParam(params, 1, "increment", errors.ErrCodeInvalidAccelerationFactor)
	if err != nil {
		return err
	}

	maxValue, err := positiveFloatParam(params, 2, "max", errors.ErrCodeInvalidAccelerationFactor)
	if err != nil {
		return err
	}

	if maxValue < start {
		return errors.Newf(errors.ErrCodeInvalidAccelerationFactor, "max must not be less than start, got %v and %v", maxValue, start)
	}

	p.params = types.SARParams{Start: start, Increment: increment, Max: maxValue}

	return nil
}

func (p *ParabolicSAR) Compute(columns series.Columns) (Result, error) {
	values, err := indicator.ParabolicSAR(columns, p.params)
	if err != nil {
		return Result{}, err
	}

	return newResult(p.Name(), columns, aligned("sar", values)), nil
}

// PivotPoints exposes classic floor pivots. It takes no parameters.
type PivotPoints struct{}

func NewPivotPoints() Indicator {
	return &PivotPoints{}
}

func (p *PivotPoints) Name() types.IndicatorType {
	return types.IndicatorTypePivotPoints
}

func (p *PivotPoints) Config(params ...any) error {
	return expectParams(params, 0, 0, "no parameters")
}

func (p *PivotPoints) Compute(columns series.Columns) (Result, error) {
	result, err := indicator.PivotPoints(columns)
	if err != nil {
		return Result{}, err
	}

	return newResult(p.Name(), columns,
		aligned("pivot", result.Pivot),
		aligned("r1", result.R1),
		aligned("r2", result.R2),
		aligned("s1", result.S1),
		aligned("s2", result.S2),
	), nil
}
