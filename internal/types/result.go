package types

// BollingerBandsResult holds the three Bollinger lines, each aligned to the input.
type BollingerBandsResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// IchimokuResult holds the five Ichimoku lines, each aligned to the input.
type IchimokuResult struct {
	TenkanSen   []float64
	KijunSen    []float64
	SenkouSpanA []float64
	SenkouSpanB []float64
	ChikouSpan  []float64
}

// DMIResult holds the directional movement lines.
type DMIResult struct {
	PlusDI  []float64
	MinusDI []float64
	DX      []float64
	ADX     []float64
}

// MACDResult holds the MACD line, its signal line and their difference.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// PivotPointsResult holds classic floor pivots computed per bar.
type PivotPointsResult struct {
	Pivot []float64
	R1    []float64
	R2    []float64
	S1    []float64
	S2    []float64
}

// RenkoDirection is +1 for a rising brick and -1 for a falling one. The origin
// brick placed at the first price has direction 0.
type RenkoDirection int

const (
	RenkoUp     RenkoDirection = 1
	RenkoOrigin RenkoDirection = 0
	RenkoDown   RenkoDirection = -1
)

// RenkoBrick is one emitted brick. Price is the level the brick closes at.
type RenkoBrick struct {
	Price     float64        `json:"price"`
	Direction RenkoDirection `json:"direction"`
}

// KagiDirection is the thickness of a Kagi line segment.
type KagiDirection string

const (
	// KagiYang is a rising line.
	KagiYang KagiDirection = "yang"
	// KagiYin is a falling line.
	KagiYin KagiDirection = "yin"
)

// KagiResult holds Kagi turning points and the direction of the segment ending at each.
type KagiResult struct {
	Prices     []float64       `json:"prices"`
	Directions []KagiDirection `json:"directions"`
}

// Level is a price level found at a bar index.
type Level struct {
	Index int     `json:"index"`
	Price float64 `json:"price"`
}

// ImportantLevels is the outcome of local-extrema detection.
type ImportantLevels struct {
	HighestResistance float64 `json:"highest_resistance"`
	LowestSupport     float64 `json:"lowest_support"`
	AveragePivot      float64 `json:"average_pivot"`
	Supports          []Level `json:"supports"`
	Resistances       []Level `json:"resistances"`
}

// PriceLevel is a rounded price and the number of bars that closed on it.
type PriceLevel struct {
	Price       float64 `json:"price"`
	Occurrences int     `json:"occurrences"`
}
