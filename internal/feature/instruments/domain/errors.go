// Package domain defines domain-level errors for the instruments feature.
package domain

import "errors"

// Domain errors for instrument and basket operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrDataUnavailable indicates that the market-data provider returned no
	// data for a ticker/date range, or that the ticker is unknown.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrInsufficientData indicates that statistics were requested on an
	// empty price series.
	ErrInsufficientData = errors.New("insufficient data for statistics")

	// ErrEmptyBasket indicates that a basket was requested with zero member
	// tickers.
	ErrEmptyBasket = errors.New("basket has no member instruments")

	// ErrInvalidDateRange indicates that a start or end date could not be
	// parsed as an ISO yyyy-mm-dd date.
	ErrInvalidDateRange = errors.New("invalid date range")
)
