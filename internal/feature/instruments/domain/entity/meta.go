package entity

// InstrumentMeta holds per-ticker metadata from the market-data provider.
// Beta is passed through as reported; this system does not compute it.
type InstrumentMeta struct {
	Ticker string
	Beta   float64
}
