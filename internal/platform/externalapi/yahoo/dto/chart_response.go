// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// ChartResponse represents the JSON response from the v8 chart endpoint.
// Holiday slots come back as JSON nulls, which decode to zero values here
// and are skipped by the caller.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *APIError `json:"error"`
	} `json:"chart"`
}

// QuoteSummaryResponse represents the JSON response from the v10
// quoteSummary endpoint, restricted to the defaultKeyStatistics module.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			DefaultKeyStatistics struct {
				Beta struct {
					Raw float64 `json:"raw"`
				} `json:"beta"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *APIError `json:"error"`
	} `json:"quoteSummary"`
}

// APIError is the error object embedded in Yahoo Finance responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
