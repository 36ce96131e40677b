package types

import "time"

// Bar is one period of OHLCV market data.
type Bar struct {
	Symbol string    `csv:"symbol" json:"symbol"`
	Time   time.Time `csv:"time" json:"time"`
	Open   float64   `csv:"open" json:"open"`
	High   float64   `csv:"high" json:"high"`
	Low    float64   `csv:"low" json:"low"`
	Close  float64   `csv:"close" json:"close"`
	Volume float64   `csv:"volume" json:"volume"`
}

// PriceField selects one price column of a bar series.
type PriceField string

const (
	PriceFieldOpen   PriceField = "open"
	PriceFieldHigh   PriceField = "high"
	PriceFieldLow    PriceField = "low"
	PriceFieldClose  PriceField = "close"
	PriceFieldVolume PriceField = "volume"
)
