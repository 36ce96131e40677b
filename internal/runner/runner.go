// Package runner executes a run config: load bars, compute every configured
// indicator and write the results.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-ta/internal/config"
	"github.com/rxtech-lab/argo-ta/internal/datasource"
	"github.com/rxtech-lab/argo-ta/internal/logger"
	"github.com/rxtech-lab/argo-ta/internal/registry"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/internal/writer"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Output describes one computed indicator.
type Output struct {
	Indicator types.IndicatorType `json:"indicator"`
	// Name is the unique file stem, the indicator name with a numeric suffix on repeats
	Name     string        `json:"name"`
	Files    []string      `json:"files"`
	Duration time.Duration `json:"duration"`
}

// Report summarises a finished run.
type Report struct {
	RunID   string   `json:"runId"`
	Bars    int      `json:"bars"`
	Outputs []Output `json:"outputs"`
}

// Runner evaluates the indicators of a config sequentially.
type Runner struct {
	indicators []config.IndicatorConfig
	source     datasource.BarSource
	writer     writer.ResultWriter
	// newRegistry gives every config entry fresh indicator instances, so an
	// entry without params runs with defaults
	newRegistry func() registry.IndicatorRegistry
	log         *logger.Logger
	metrics     *Metrics
	progress    io.Writer
}

// Option customises a Runner.
type Option func(*Runner)

// WithRegistryFactory replaces the default registry factory.
func WithRegistryFactory(factory func() registry.IndicatorRegistry) Option {
	return func(r *Runner) {
		r.newRegistry = factory
	}
}

// WithMetrics records into m instead of a fresh Metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithProgress renders a progress bar over the indicators to w.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

func New(indicators []config.IndicatorConfig, source datasource.BarSource, resultWriter writer.ResultWriter, log *logger.Logger, opts ...Option) *Runner {
	r := &Runner{
		indicators:  indicators,
		source:      source,
		writer:      resultWriter,
		newRegistry: registry.NewDefaultRegistry,
		log:         log,
		metrics:     nil,
		progress:    nil,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.metrics == nil {
		r.metrics = NewMetrics()
	}

	return r
}

// FromConfig wires the data source and writer named by cfg.
// The caller closes the returned source.
func FromConfig(cfg config.Config, log *logger.Logger, opts ...Option) (*Runner, datasource.BarSource, error) {
	source, err := datasource.New(cfg.Input, log)
	if err != nil {
		return nil, nil, err
	}

	resultWriter, err := writer.New(cfg.Output.Format, cfg.Output.Path)
	if err != nil {
		_ = source.Close()

		return nil, nil, err
	}

	return New(cfg.Indicators, source, resultWriter, log, opts...), source, nil
}

// Metrics returns the collectors the runner records into.
func (r *Runner) Metrics() *Metrics {
	return r.metrics
}

// Run loads the bars and computes every indicator. Any failure stops the run.
func (r *Runner) Run(ctx context.Context, callbacks Callbacks) (report Report, err error) {
	report.RunID = uuid.New().String()

	if callbacks.OnRunEnd != nil {
		defer func() {
			(*callbacks.OnRunEnd)(err)
		}()
	}

	log := r.log.With(zap.String("run_id", report.RunID))

	bars, err := r.source.Load(ctx)
	if err != nil {
		return report, err
	}

	columns := series.FromBars(bars)
	report.Bars = columns.Len()
	r.metrics.barsLoaded.Add(float64(report.Bars))

	log.Info("Bars loaded", zap.Int("bars", report.Bars), zap.Int("indicators", len(r.indicators)))

	if callbacks.OnRunStart != nil {
		if err := (*callbacks.OnRunStart)(report.RunID, report.Bars, len(r.indicators)); err != nil {
			return report, err
		}
	}

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = progressbar.NewOptions(len(r.indicators),
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription("computing"),
			progressbar.OptionShowCount(),
		)
	}

	seen := make(map[types.IndicatorType]int)

	for i, entry := range r.indicators {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := string(entry.Name)
		if n := seen[entry.Name]; n > 0 {
			name = fmt.Sprintf("%s_%d", entry.Name, n)
		}

		seen[entry.Name]++

		output, err := r.runIndicator(entry, name, columns)
		if err != nil {
			r.metrics.failures.WithLabelValues(string(entry.Name)).Inc()
			log.Error("Indicator failed", zap.String("indicator", string(entry.Name)), zap.Error(err))

			return report, err
		}

		log.Debug("Indicator computed",
			zap.String("indicator", string(entry.Name)),
			zap.Strings("files", output.Files),
			zap.Duration("duration", output.Duration),
		)

		report.Outputs = append(report.Outputs, output)

		if callbacks.OnIndicatorEnd != nil {
			(*callbacks.OnIndicatorEnd)(i, output)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	log.Info("Run finished", zap.Int("outputs", len(report.Outputs)))

	return report, nil
}

func (r *Runner) runIndicator(entry config.IndicatorConfig, name string, columns series.Columns) (Output, error) {
	indicator, err := r.newRegistry().GetIndicator(entry.Name)
	if err != nil {
		return Output{}, err
	}

	if len(entry.Params) > 0 {
		if err := indicator.Config(entry.Params...); err != nil {
			return Output{}, errors.Wrapf(errors.GetCode(err), err, "failed to configure %s", entry.Name)
		}
	}

	started := time.Now()

	result, err := indicator.Compute(columns)
	if err != nil {
		// engine errors keep their parameter or input code
		code := errors.GetCode(err)
		if code == errors.ErrCodeUnknown {
			code = errors.ErrCodeIndicatorCalculation
		}

		return Output{}, errors.Wrapf(code, err, "failed to compute %s", entry.Name)
	}

	duration := time.Since(started)
	r.metrics.computeSeconds.WithLabelValues(string(entry.Name)).Observe(duration.Seconds())

	files, err := r.writer.Write(name, columns, result)
	if err != nil {
		return Output{}, err
	}

	return Output{Indicator: entry.Name, Name: name, Files: files, Duration: duration}, nil
}
