package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-ta/internal/types"
)

// DataGenerator produces synthetic OHLCV bars for tests and benchmarks.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a generator. A fixed seed gives reproducible bars.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures the generated series.
type GeneratorConfig struct {
	Symbol       string
	StartTime    time.Time
	Interval     time.Duration
	Count        int
	InitialPrice float64
	// Volatility is the per-bar standard deviation of the close-to-close return
	Volatility float64
	// Trend is the total drift spread over the series
	Trend          float64
	VolumeBase     float64
	VolumeVariance float64
	// GapEvery sets the close of every n-th bar to NaN. Zero disables gaps.
	GapEvery int
}

// DefaultConfig returns a one-minute random walk around 100.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:         "TEST",
		StartTime:      time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Interval:       time.Minute,
		Count:          10000,
		InitialPrice:   100.0,
		Volatility:     0.002,
		Trend:          0.0,
		VolumeBase:     10000,
		VolumeVariance: 0.3,
	}
}

// Generate walks a geometric Brownian motion and derives each bar from it.
// High is always >= max(open, close) and low <= min(open, close).
func (g *DataGenerator) Generate(config GeneratorConfig) []types.Bar {
	bars := make([]types.Bar, config.Count)
	price := config.InitialPrice
	at := config.StartTime

	for i := range bars {
		open := price
		close := open * (1 + config.Volatility*g.normal() + config.Trend/float64(config.Count))

		if close <= 0 {
			close = open * 0.99
		}

		high := math.Max(open, close) + g.rng.Float64()*config.Volatility*open*0.5
		low := math.Min(open, close) - g.rng.Float64()*config.Volatility*open*0.5

		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volume := config.VolumeBase * (1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance)
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		bars[i] = types.Bar{
			Symbol: config.Symbol,
			Time:   at,
			Open:   round(open, 4),
			High:   round(high, 4),
			Low:    round(low, 4),
			Close:  round(close, 4),
			Volume: round(volume, 2),
		}

		if config.GapEvery > 0 && (i+1)%config.GapEvery == 0 {
			bars[i].Close = math.NaN()
		}

		price = close
		at = at.Add(config.Interval)
	}

	return bars
}

// GenerateMultiSymbol concatenates one series per symbol, each with a
// slightly different starting price and volatility.
func (g *DataGenerator) GenerateMultiSymbol(symbols []string, base GeneratorConfig) []types.Bar {
	var bars []types.Bar

	for _, symbol := range symbols {
		config := base
		config.Symbol = symbol
		config.InitialPrice = base.InitialPrice * (0.8 + g.rng.Float64()*0.4)
		config.Volatility = base.Volatility * (0.8 + g.rng.Float64()*0.4)

		bars = append(bars, g.Generate(config)...)
	}

	return bars
}

// Generate10K returns 10,000 bars with the default configuration and seed 42.
func Generate10K(symbol string) []types.Bar {
	config := DefaultConfig()
	config.Symbol = symbol

	return NewDataGenerator(42).Generate(config)
}

// normal draws a standard normal value with the Box-Muller transform.
func (g *DataGenerator) normal() float64 {
	u1 := g.rng.Float64()
	u2 := g.rng.Float64()

	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func round(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(val*pow) / pow
}
