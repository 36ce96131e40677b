package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-ta/internal/config"
	"github.com/rxtech-lab/argo-ta/internal/logger"
	"github.com/rxtech-lab/argo-ta/internal/registry"
	"github.com/rxtech-lab/argo-ta/internal/runner"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/internal/version"
	"github.com/urfave/cli/v3"
)

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "argo-ta",
		Usage:   "Compute technical indicators over OHLCV bars",
		Version: version.GetVersion(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("ARGO_TA_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the available indicators",
				Action: listAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the run config",
				Action: schemaAction,
			},
			{
				Name:  "compute",
				Usage: "Compute one indicator over a bar file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "indicator", Aliases: []string{"i"}, Usage: "Indicator name, see list", Required: true},
					&cli.StringSliceFlag{Name: "param", Aliases: []string{"p"}, Usage: "Positional indicator parameter, repeatable"},
					&cli.StringFlag{Name: "input", Usage: "CSV or parquet bar file", Required: true},
					&cli.StringFlag{Name: "symbol", Aliases: []string{"s"}, Usage: "Only keep bars of this symbol"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format (csv, json)", Value: string(config.OutputFormatCSV)},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output directory", Value: "out"},
				},
				Action: computeAction,
			},
			{
				Name:  "run",
				Usage: "Execute a run config",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to the YAML run config", Required: true},
					&cli.BoolFlag{Name: "progress", Usage: "Show a progress bar on stderr"},
				},
				Action: runAction,
			},
		},
	}
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer

	for _, name := range registry.NewDefaultRegistry().ListIndicators() {
		fmt.Fprintln(out, name)
	}

	return nil
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	cfg := &config.Config{}

	schema, err := cfg.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	fmt.Fprintln(cmd.Root().Writer, schema)

	return nil
}

func computeAction(ctx context.Context, cmd *cli.Command) error {
	input := cmd.String("input")

	cfg := config.Config{
		Version:  version.GetVersion(),
		LogLevel: cmd.Root().String("log-level"),
		Input: config.InputConfig{
			Path:   input,
			Format: inputFormat(input),
			Symbol: cmd.String("symbol"),
		},
		Output: config.OutputConfig{
			Path:   cmd.String("output"),
			Format: config.OutputFormat(cmd.String("format")),
		},
		Indicators: []config.IndicatorConfig{
			{Name: types.IndicatorType(cmd.String("indicator")), Params: parseParams(cmd.StringSlice("param"))},
		},
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return execute(ctx, cmd, cfg, false)
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if level := cmd.Root().String("log-level"); level != "" {
		cfg.LogLevel = level
	}

	return execute(ctx, cmd, cfg, cmd.Bool("progress"))
}

func execute(ctx context.Context, cmd *cli.Command, cfg config.Config, progress bool) error {
	log, err := logger.NewLoggerWithLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	defer func() {
		_ = log.Sync()
	}()

	var opts []runner.Option
	if progress {
		opts = append(opts, runner.WithProgress(os.Stderr))
	}

	r, source, err := runner.FromConfig(cfg, log, opts...)
	if err != nil {
		return fmt.Errorf("failed to set up run: %w", err)
	}

	defer source.Close()

	report, err := r.Run(ctx, runner.Callbacks{})
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	encoder := json.NewEncoder(cmd.Root().Writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(report)
}

// inputFormat picks the bar file format from its extension. Anything that is
// not .csv is read as parquet.
func inputFormat(path string) config.InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return config.InputFormatCSV
	}

	return config.InputFormatParquet
}
