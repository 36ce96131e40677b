package types

// IchimokuParams are the three Ichimoku lookback periods.
type IchimokuParams struct {
	Tenkan int
	Kijun  int
	Senkou int
}

// DefaultIchimokuParams returns the conventional 9/26/52 periods.
func DefaultIchimokuParams() IchimokuParams {
	return IchimokuParams{Tenkan: 9, Kijun: 26, Senkou: 52}
}

// SARParams control the Parabolic SAR acceleration factor.
type SARParams struct {
	// Start is the acceleration factor after every reversal
	Start float64
	// Increment is added each time the extreme point extends
	Increment float64
	// Max caps the acceleration factor
	Max float64
}

// DefaultSARParams returns the conventional 0.02/0.02/0.2 settings.
func DefaultSARParams() SARParams {
	return SARParams{Start: 0.02, Increment: 0.02, Max: 0.2}
}

// SignalParams configure the entry/exit signal generator.
type SignalParams struct {
	SMAPeriod int
	EMAPeriod int
	ATRPeriod int
	Threshold float64
	// Field is the price column the averages run on. Empty means close.
	Field PriceField
}

// DefaultSignalParams returns a 20/10/14 setup with a half-ATR band on close.
func DefaultSignalParams() SignalParams {
	return SignalParams{
		SMAPeriod: 20,
		EMAPeriod: 10,
		ATRPeriod: 14,
		Threshold: 0.5,
		Field:     PriceFieldClose,
	}
}
