package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rxtech-lab/argo-ta/internal/config"
	"github.com/rxtech-lab/argo-ta/internal/logger"
	"github.com/rxtech-lab/argo-ta/internal/registry"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/mocks"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RunnerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	source    *mocks.MockBarSource
	writer    *mocks.MockResultWriter
	registry  *mocks.MockIndicatorRegistry
	indicator *mocks.MockIndicator
	logger    *logger.Logger
	bars      []types.Bar
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (suite *RunnerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.source = mocks.NewMockBarSource(suite.ctrl)
	suite.writer = mocks.NewMockResultWriter(suite.ctrl)
	suite.registry = mocks.NewMockIndicatorRegistry(suite.ctrl)
	suite.indicator = mocks.NewMockIndicator(suite.ctrl)
	suite.logger = logger.NewNopLogger()

	generatorConfig := mocks.DefaultConfig()
	generatorConfig.Count = 50
	suite.bars = mocks.NewDataGenerator(42).Generate(generatorConfig)
}

func (suite *RunnerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RunnerTestSuite) newRunner(indicators []config.IndicatorConfig) *Runner {
	return New(indicators, suite.source, suite.writer, suite.logger,
		WithRegistryFactory(func() registry.IndicatorRegistry { return suite.registry }),
		WithProgress(io.Discard),
	)
}

func (suite *RunnerTestSuite) TestRun() {
	result := registry.Result{Indicator: types.IndicatorTypeRSI, Length: len(suite.bars)}

	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)
	suite.registry.EXPECT().GetIndicator(types.IndicatorTypeRSI).Return(suite.indicator, nil).Times(2)
	suite.indicator.EXPECT().Config(14).Return(nil)
	suite.indicator.EXPECT().Compute(gomock.Any()).Return(result, nil).Times(2)
	suite.writer.EXPECT().Write("rsi", gomock.Any(), result).Return([]string{"out/rsi.csv"}, nil)
	suite.writer.EXPECT().Write("rsi_1", gomock.Any(), result).Return([]string{"out/rsi_1.csv"}, nil)

	var started, finished []int

	var endErr error

	onStart := OnRunStartCallback(func(runID string, totalBars int, totalIndicators int) error {
		suite.NotEmpty(runID)
		started = append(started, totalBars, totalIndicators)

		return nil
	})
	onIndicator := OnIndicatorEndCallback(func(index int, output Output) {
		finished = append(finished, index)
	})
	onEnd := OnRunEndCallback(func(err error) {
		endErr = err
	})

	runner := suite.newRunner([]config.IndicatorConfig{
		{Name: types.IndicatorTypeRSI, Params: []any{14}},
		{Name: types.IndicatorTypeRSI},
	})

	report, err := runner.Run(context.Background(), Callbacks{
		OnRunStart:     &onStart,
		OnIndicatorEnd: &onIndicator,
		OnRunEnd:       &onEnd,
	})
	suite.Require().NoError(err)

	suite.NotEmpty(report.RunID)
	suite.Equal(50, report.Bars)
	suite.Require().Len(report.Outputs, 2)
	suite.Equal("rsi", report.Outputs[0].Name)
	suite.Equal("rsi_1", report.Outputs[1].Name)
	suite.Equal([]string{"out/rsi_1.csv"}, report.Outputs[1].Files)

	suite.Equal([]int{50, 2}, started)
	suite.Equal([]int{0, 1}, finished)
	suite.NoError(endErr)

	metrics := runner.Metrics()
	suite.Equal(50.0, testutil.ToFloat64(metrics.barsLoaded))
	suite.Equal(1, testutil.CollectAndCount(metrics.computeSeconds))
	suite.Equal(0, testutil.CollectAndCount(metrics.failures))
}

func (suite *RunnerTestSuite) TestRunLoadError() {
	loadErr := errors.New(errors.ErrCodeNoDataFound, "no bars")
	suite.source.EXPECT().Load(gomock.Any()).Return(nil, loadErr)

	var endErr error

	onEnd := OnRunEndCallback(func(err error) {
		endErr = err
	})

	_, err := suite.newRunner([]config.IndicatorConfig{{Name: types.IndicatorTypeRSI}}).
		Run(context.Background(), Callbacks{OnRunEnd: &onEnd})
	suite.ErrorIs(err, loadErr)
	suite.ErrorIs(endErr, loadErr)
}

func (suite *RunnerTestSuite) TestRunStartCallbackAborts() {
	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)

	abort := errors.New(errors.ErrCodeUnknown, "abort")
	onStart := OnRunStartCallback(func(string, int, int) error { return abort })

	_, err := suite.newRunner([]config.IndicatorConfig{{Name: types.IndicatorTypeRSI}}).
		Run(context.Background(), Callbacks{OnRunStart: &onStart})
	suite.ErrorIs(err, abort)
}

func (suite *RunnerTestSuite) TestRunConfigErrorKeepsCode() {
	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)
	suite.registry.EXPECT().GetIndicator(types.IndicatorTypeRSI).Return(suite.indicator, nil)
	suite.indicator.EXPECT().Config(0).Return(errors.New(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got 0"))

	runner := suite.newRunner([]config.IndicatorConfig{{Name: types.IndicatorTypeRSI, Params: []any{0}}})

	_, err := runner.Run(context.Background(), Callbacks{})
	suite.Require().Error(err)
	suite.True(errors.IsInvalidParameter(err))
	suite.Contains(err.Error(), "failed to configure rsi")
	suite.Equal(1.0, testutil.ToFloat64(runner.Metrics().failures.WithLabelValues("rsi")))
}

func (suite *RunnerTestSuite) TestRunComputeError() {
	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)
	suite.registry.EXPECT().GetIndicator(types.IndicatorTypeKagi).Return(suite.indicator, nil)
	suite.indicator.EXPECT().Compute(gomock.Any()).Return(registry.Result{}, errors.New(errors.ErrCodeEmptyInput, "Prices vector must not be empty."))

	_, err := suite.newRunner([]config.IndicatorConfig{{Name: types.IndicatorTypeKagi}}).Run(context.Background(), Callbacks{})
	suite.True(errors.IsInvalidInput(err))
}

func (suite *RunnerTestSuite) TestRunUnclassifiedComputeError() {
	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)
	suite.registry.EXPECT().GetIndicator(types.IndicatorTypeKagi).Return(suite.indicator, nil)
	suite.indicator.EXPECT().Compute(gomock.Any()).Return(registry.Result{}, fmt.Errorf("division by zero"))

	_, err := suite.newRunner([]config.IndicatorConfig{{Name: types.IndicatorTypeKagi}}).Run(context.Background(), Callbacks{})
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorCalculation))
	suite.Contains(err.Error(), "failed to compute kagi")
	suite.Contains(err.Error(), "division by zero")
}

func (suite *RunnerTestSuite) TestRunUnknownIndicator() {
	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)

	runner := New([]config.IndicatorConfig{{Name: "vwap"}}, suite.source, suite.writer, suite.logger)

	_, err := runner.Run(context.Background(), Callbacks{})
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RunnerTestSuite) TestRunCancelled() {
	suite.source.EXPECT().Load(gomock.Any()).Return(suite.bars, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.newRunner([]config.IndicatorConfig{{Name: types.IndicatorTypeRSI}}).Run(ctx, Callbacks{})
	suite.ErrorIs(err, context.Canceled)
}

func (suite *RunnerTestSuite) TestFromConfig() {
	dir := suite.T().TempDir()
	input := filepath.Join(dir, "bars.csv")

	file, err := os.Create(input)
	suite.Require().NoError(err)
	suite.Require().NoError(gocsv.MarshalFile(&suite.bars, file))
	suite.Require().NoError(file.Close())

	cfg := config.Config{
		Version: "1.0.0",
		Input:   config.InputConfig{Path: input, Format: config.InputFormatCSV},
		Output:  config.OutputConfig{Path: filepath.Join(dir, "out"), Format: config.OutputFormatCSV},
		Indicators: []config.IndicatorConfig{
			{Name: types.IndicatorTypeRSI, Params: []any{14}},
			{Name: types.IndicatorTypeMACD},
			{Name: types.IndicatorTypeRenko, Params: []any{0.05}},
			{Name: types.IndicatorTypeEntryExitSignals, Params: []any{10, 5, 5, 0.1}},
		},
	}

	runner, source, err := FromConfig(cfg, suite.logger)
	suite.Require().NoError(err)

	defer source.Close()

	report, err := runner.Run(context.Background(), Callbacks{})
	suite.Require().NoError(err)
	suite.Equal(50, report.Bars)
	suite.Require().Len(report.Outputs, 4)

	for _, output := range report.Outputs {
		suite.NotEmpty(output.Files, output.Name)

		for _, path := range output.Files {
			suite.FileExists(path)
		}
	}

	suite.FileExists(filepath.Join(dir, "out", "rsi.csv"))
	suite.FileExists(filepath.Join(dir, "out", "renko_events.csv"))
	suite.FileExists(filepath.Join(dir, "out", "entry_exit_signals.csv"))
}

func (suite *RunnerTestSuite) TestFromConfigBadInput() {
	cfg := config.Sample()
	cfg.Input.Format = "xls"

	_, _, err := FromConfig(cfg, suite.logger)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedFormat))
}
