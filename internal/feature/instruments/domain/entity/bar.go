// Package entity defines the domain models for the instruments feature.
package entity

import "time"

// Bar represents one OHLC (Open, High, Low, Close) record for a ticker
// over a single trading period. High/low sanity (high >= max(open, close),
// low <= min(open, close)) is assumed from the provider, not enforced here.
type Bar struct {
	Ticker string    // Stock ticker symbol (e.g., "TSLA", "SPY")
	Time   time.Time // Timestamp for the start of this trading period
	Open   float64   // Opening price
	High   float64   // Highest price during this period
	Low    float64   // Lowest price during this period
	Close  float64   // Closing price
	Volume float64   // Trading volume

	// Derived columns, populated by Derive. Always recomputed from the raw
	// OHLC fields so repeated derivation yields identical values.
	CloseOpen float64 // Close - Open
	HighLow   float64 // High - Low
}

// Derive returns a copy of bars with the derived columns filled in.
// It is pure and idempotent: the inputs are never mutated and the derived
// values depend only on the raw OHLC fields.
func Derive(bars []Bar) []Bar {
	out := make([]Bar, len(bars))
	for i, b := range bars {
		b.CloseOpen = b.Close - b.Open
		b.HighLow = b.High - b.Low
		out[i] = b
	}
	return out
}
