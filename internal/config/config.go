// Package config loads and validates run configurations for the indicator runner.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/internal/version"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"github.com/rxtech-lab/argo-ta/pkg/utils"
	"gopkg.in/yaml.v3"
)

// SchemaName is the file name the generated JSON schema is written under.
const SchemaName = "argo-ta-config.json"

type InputFormat string

const (
	InputFormatCSV     InputFormat = "csv"
	InputFormatParquet InputFormat = "parquet"
)

type OutputFormat string

const (
	OutputFormatCSV  OutputFormat = "csv"
	OutputFormatJSON OutputFormat = "json"
)

// InputConfig selects the bar source.
type InputConfig struct {
	Path   string      `yaml:"path" json:"path" jsonschema:"title=Path,description=Path to a CSV or parquet file of bars" validate:"required"`
	Format InputFormat `yaml:"format" json:"format" jsonschema:"title=Format,enum=csv,enum=parquet" validate:"required,oneof=csv parquet"`
	// Symbol filters a multi-symbol file. Empty keeps every bar.
	Symbol string `yaml:"symbol,omitempty" json:"symbol,omitempty" jsonschema:"title=Symbol,description=Only keep bars of this symbol"`
	// Start and End bound the bar time, inclusive. Parquet input only.
	Start string `yaml:"start,omitempty" json:"start,omitempty" jsonschema:"title=Start,description=RFC3339 lower time bound" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	End   string `yaml:"end,omitempty" json:"end,omitempty" jsonschema:"title=End,description=RFC3339 upper time bound" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// OutputConfig selects where and how results are written.
type OutputConfig struct {
	Path   string       `yaml:"path" json:"path" jsonschema:"title=Path,description=Output directory" validate:"required"`
	Format OutputFormat `yaml:"format" json:"format" jsonschema:"title=Format,enum=csv,enum=json" validate:"required,oneof=csv json"`
}

// IndicatorConfig names one indicator and the positional parameters passed to its Config.
type IndicatorConfig struct {
	Name   types.IndicatorType `yaml:"name" json:"name" jsonschema:"title=Name,description=Registered indicator name" validate:"required"`
	Params []any               `yaml:"params,omitempty" json:"params,omitempty" jsonschema:"title=Params,description=Positional indicator parameters"`
}

// Config is a complete run: one input, one output, any number of indicators.
type Config struct {
	Version    string            `yaml:"version" json:"version" jsonschema:"title=Version,description=Engine version the config was written for" validate:"required"`
	LogLevel   string            `yaml:"logLevel,omitempty" json:"logLevel,omitempty" jsonschema:"title=Log level,enum=debug,enum=info,enum=warn,enum=error" validate:"omitempty,oneof=debug info warn error"`
	Input      InputConfig       `yaml:"input" json:"input"`
	Output     OutputConfig      `yaml:"output" json:"output"`
	Indicators []IndicatorConfig `yaml:"indicators" json:"indicators" jsonschema:"minItems=1" validate:"required,min=1,dive"`
}

// Sample returns a config exercising a handful of indicators.
func Sample() Config {
	return Config{
		Version:  version.GetVersion(),
		LogLevel: "info",
		Input:    InputConfig{Path: "data/bars.csv", Format: InputFormatCSV},
		Output:   OutputConfig{Path: "out", Format: OutputFormatCSV},
		Indicators: []IndicatorConfig{
			{Name: types.IndicatorTypeRSI, Params: []any{14}},
			{Name: types.IndicatorTypeBollingerBands, Params: []any{20, 2.0}},
			{Name: types.IndicatorTypeIchimoku, Params: []any{9, 26, 52}},
			{Name: types.IndicatorTypeRenko, Params: []any{1.0}},
			{Name: types.IndicatorTypeEntryExitSignals, Params: []any{20, 10, 14, 0.5}},
		},
	}
}

// Parse decodes YAML and validates the result.
func Parse(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigNotFound, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Validate checks struct tags and the config version against the engine version.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return version.CheckConfigCompatibility(version.GetVersion(), c.Version)
}

// GenerateSchemaJSON returns the JSON schema of Config.
func (c *Config) GenerateSchemaJSON() (string, error) {
	return utils.GetSchemaFromConfig(c, "argo-ta-config")
}
