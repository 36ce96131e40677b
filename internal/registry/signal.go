package registry

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/signal"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// EntryExitSignals exposes the signal labels as an aligned line (1 entry,
// -1 exit, 0 none, NaN during warm-up) and the fired events as entry and
// exit lines indexed by bar.
type EntryExitSignals struct {
	params types.SignalParams
}

func NewEntryExitSignals() Indicator {
	return &EntryExitSignals{params: types.DefaultSignalParams()}
}

func (e *EntryExitSignals) Name() types.IndicatorType {
	return types.IndicatorTypeEntryExitSignals
}

// Config expects smaPeriod (int), emaPeriod (int), atrPeriod (int), threshold (float64) and an optional price field.
func (e *EntryExitSignals) Config(params ...any) error {
	if err := expectParams(params, 4, 5, "4 parameters: smaPeriod (int), emaPeriod (int), atrPeriod (int), threshold (float64), and an optional field (string)"); err != nil {
		return err
	}

	smaPeriod, err := intParam(params, 0, "smaPeriod")
	if err != nil {
		return err
	}

	emaPeriod, err := intParam(params, 1, "emaPeriod")
	if err != nil {
		return err
	}

	atrPeriod, err := intParam(params, 2, "atrPeriod")
	if err != nil {
		return err
	}

	threshold, err := floatParam(params, 3, "threshold")
	if err != nil {
		return err
	}

	if !(threshold >= 0) {
		return errors.Newf(errors.ErrCodeInvalidThreshold, "threshold must not be negative, got %v", threshold)
	}

	field, err := fieldParam(params, 4)
	if err != nil {
		return err
	}

	e.params = types.SignalParams{
		SMAPeriod: smaPeriod,
		EMAPeriod: emaPeriod,
		ATRPeriod: atrPeriod,
		Threshold: threshold,
		Field:     fieldOrClose(field),
	}

	return nil
}

func (e *EntryExitSignals) Compute(columns series.Columns) (Result, error) {
	result, err := signal.EntryExitSignals(columns, e.params)
	if err != nil {
		return Result{}, err
	}

	warmup := signal.WarmupLength(e.params)
	labels := make([]float64, len(result.Labels))

	for i, label := range result.Labels {
		if i < warmup {
			labels[i] = math.NaN()

			continue
		}

		labels[i] = label.Value()
	}

	var entryPrices, exitPrices []float64

	var entryIndex, exitIndex []int

	for _, fired := range result.Events {
		if fired.Type == types.SignalTypeEntry {
			entryPrices = append(entryPrices, fired.Price)
			entryIndex = append(entryIndex, fired.Index)
		} else {
			exitPrices = append(exitPrices, fired.Price)
			exitIndex = append(exitIndex, fired.Index)
		}
	}

	return newResult(e.Name(), columns,
		aligned("signal", labels),
		event("entry", entryPrices, entryIndex),
		event("exit", exitPrices, exitIndex),
	), nil
}
