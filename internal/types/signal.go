package types

import "time"

type SignalType string

const (
	// SignalTypeEntry marks the bar where the fast average breaks above the slow one by more than the band.
	SignalTypeEntry SignalType = "entry"
	// SignalTypeExit marks the symmetric downward break.
	SignalTypeExit SignalType = "exit"
	// SignalTypeNone is every other bar, warm-up included.
	SignalTypeNone SignalType = "none"
)

// Signal is one entry or exit event.
type Signal struct {
	// Index is the bar index the signal fired on
	Index int `json:"index"`
	// Time is the bar time
	Time time.Time `json:"time"`
	// Type is entry or exit
	Type SignalType `json:"type"`
	// Price is the value of the price column at Index
	Price float64 `json:"price"`
	// Reason describes the crossing
	Reason string `json:"reason"`
}

// SignalSeries is the per-bar label series plus the list of fired events.
type SignalSeries struct {
	Labels []SignalType `json:"labels"`
	Events []Signal     `json:"events"`
}

// Value encodes a label as a number: 1 entry, -1 exit, 0 none.
func (s SignalType) Value() float64 {
	switch s {
	case SignalTypeEntry:
		return 1
	case SignalTypeExit:
		return -1
	default:
		return 0
	}
}
