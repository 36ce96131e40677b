package types

type IndicatorType string

const (
	IndicatorTypeMA                IndicatorType = "ma"
	IndicatorTypeEMA               IndicatorType = "ema"
	IndicatorTypeRSI               IndicatorType = "rsi"
	IndicatorTypeDMI               IndicatorType = "dmi"
	IndicatorTypeStochastic        IndicatorType = "stochastic_oscillator"
	IndicatorTypeSMI               IndicatorType = "stochastic_momentum_index"
	IndicatorTypeBollingerBands    IndicatorType = "bollinger_bands"
	IndicatorTypeTrendsMeter       IndicatorType = "trends_meter"
	IndicatorTypeMACD              IndicatorType = "macd"
	IndicatorTypeATR               IndicatorType = "atr"
	IndicatorTypeIchimoku          IndicatorType = "ichimoku"
	IndicatorTypeParabolicSAR      IndicatorType = "parabolic_sar"
	IndicatorTypePivotPoints       IndicatorType = "pivot_points"
	IndicatorTypeRenko             IndicatorType = "renko"
	IndicatorTypeKagi              IndicatorType = "kagi"
	IndicatorTypeImportantLevels   IndicatorType = "important_levels"
	IndicatorTypeSupportResistance IndicatorType = "support_resistance"
	IndicatorTypeEntryExitSignals  IndicatorType = "entry_exit_signals"
)

// Line is one named output series of an indicator.
//
// Aligned lines have one value per input bar with NaN marking undefined
// positions. Event lines (Renko bricks, Kagi turns, levels) are shorter and
// carry the originating bar index in Index when one exists.
type Line struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	Index   []int     `json:"index,omitempty"`
	Aligned bool      `json:"aligned"`
}
