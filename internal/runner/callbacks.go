package runner

// OnRunStartCallback is called once the bars are loaded. Returning an error aborts the run.
type OnRunStartCallback func(runID string, totalBars int, totalIndicators int) error

// OnIndicatorEndCallback is called after each indicator's files are written.
type OnIndicatorEndCallback func(index int, output Output)

// OnRunEndCallback is called when the run finishes, always via defer.
type OnRunEndCallback func(err error)

// Callbacks holds optional lifecycle hooks. Nil fields are skipped.
type Callbacks struct {
	OnRunStart     *OnRunStartCallback
	OnIndicatorEnd *OnIndicatorEndCallback
	OnRunEnd       *OnRunEndCallback
}
