// Package yahoo provides a client for the Yahoo Finance public market-data API.
package yahoo

import "time"

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Config holds configuration for the Yahoo Finance API client.
type Config struct {
	BaseURL string        // Base URL for the API; tests point this at a local server
	Timeout time.Duration // HTTP request timeout
}
