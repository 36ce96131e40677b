package mocks

//go:generate mockgen -destination=./mock_bar_source.go -package=mocks github.com/rxtech-lab/argo-ta/internal/datasource BarSource
//go:generate mockgen -destination=./mock_result_writer.go -package=mocks github.com/rxtech-lab/argo-ta/internal/writer ResultWriter
//go:generate mockgen -destination=./mock_indicator.go -package=mocks github.com/rxtech-lab/argo-ta/internal/registry Indicator
//go:generate mockgen -destination=./mock_indicator_registry.go -package=mocks github.com/rxtech-lab/argo-ta/internal/registry IndicatorRegistry
