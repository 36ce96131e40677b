package registry

import (
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
)

// Indicator interface defines methods that any registered indicator must implement
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Config sets the indicator parameters. Numbers may be passed as int or float64.
	Config(params ...any) error
	// Compute runs the indicator over the columns with the configured parameters
	Compute(columns series.Columns) (Result, error)
}

// Result is the output of one indicator run as named lines.
type Result struct {
	Indicator types.IndicatorType `json:"indicator"`
	// Length is the number of input bars
	Length int          `json:"length"`
	Lines  []types.Line `json:"lines"`
}

// Line returns the line with the given name.
func (r Result) Line(name string) (types.Line, bool) {
	for _, line := range r.Lines {
		if line.Name == name {
			return line, true
		}
	}

	return types.Line{}, false
}

func aligned(name string, values []float64) types.Line {
	return types.Line{Name: name, Values: values, Aligned: true}
}

func event(name string, values []float64, index []int) types.Line {
	return types.Line{Name: name, Values: values, Index: index}
}

func newResult(name types.IndicatorType, columns series.Columns, lines ...types.Line) Result {
	return Result{Indicator: name, Length: columns.Len(), Lines: lines}
}
