// Package datasource loads bar series from files.
package datasource

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-ta/internal/config"
	"github.com/rxtech-lab/argo-ta/internal/logger"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// BarSource loads a complete bar series in time order.
type BarSource interface {
	// Load reads every bar that passes the source's filter
	Load(ctx context.Context) ([]types.Bar, error)
	// Close releases the underlying resources
	Close() error
}

// Filter narrows the loaded bars. Unset fields do not filter.
type Filter struct {
	Symbol optional.Option[string]
	Start  optional.Option[time.Time]
	End    optional.Option[time.Time]
}

// Keep reports whether bar passes the filter.
func (f Filter) Keep(bar types.Bar) bool {
	if f.Symbol.IsSome() && bar.Symbol != f.Symbol.Unwrap() {
		return false
	}

	if f.Start.IsSome() && bar.Time.Before(f.Start.Unwrap()) {
		return false
	}

	if f.End.IsSome() && bar.Time.After(f.End.Unwrap()) {
		return false
	}

	return true
}

// FilterFromConfig builds a Filter from the input section of a run config.
func FilterFromConfig(input config.InputConfig) (Filter, error) {
	filter := Filter{
		Symbol: optional.None[string](),
		Start:  optional.None[time.Time](),
		End:    optional.None[time.Time](),
	}

	if input.Symbol != "" {
		filter.Symbol = optional.Some(input.Symbol)
	}

	if input.Start != "" {
		start, err := time.Parse(time.RFC3339, input.Start)
		if err != nil {
			return Filter{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid start time %q", input.Start)
		}

		filter.Start = optional.Some(start)
	}

	if input.End != "" {
		end, err := time.Parse(time.RFC3339, input.End)
		if err != nil {
			return Filter{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid end time %q", input.End)
		}

		filter.End = optional.Some(end)
	}

	return filter, nil
}

// New opens the source named by the input config.
func New(input config.InputConfig, log *logger.Logger) (BarSource, error) {
	filter, err := FilterFromConfig(input)
	if err != nil {
		return nil, err
	}

	switch input.Format {
	case config.InputFormatCSV:
		return NewCSVSource(input.Path, filter, log), nil
	case config.InputFormatParquet:
		source, err := NewDuckDBSource(":memory:", filter, log)
		if err != nil {
			return nil, err
		}

		if err := source.Initialize(input.Path); err != nil {
			_ = source.Close()

			return nil, err
		}

		return source, nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported input format %q", input.Format)
	}
}
