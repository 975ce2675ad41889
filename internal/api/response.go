// Package api defines shared HTTP response DTOs.
package api

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BarResponse is the response DTO for one OHLC bar with derived columns.
type BarResponse struct {
	Time      string  `json:"time"`       // 日付
	Open      float64 `json:"open"`       // 始値
	High      float64 `json:"high"`       // 高値
	Low       float64 `json:"low"`        // 安値
	Close     float64 `json:"close"`      // 終値
	Volume    float64 `json:"volume"`     // 出来高
	CloseOpen float64 `json:"close_open"` // 終値 - 始値
	HighLow   float64 `json:"high_low"`   // 高値 - 安値
}

// FeatureStatsResponse holds the aggregates of one feature column.
type FeatureStatsResponse struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// InstrumentResponse summarizes one instrument over its date range.
type InstrumentResponse struct {
	Ticker     string                          `json:"ticker"`
	StartDate  string                          `json:"start_date"`
	EndDate    string                          `json:"end_date"`
	Beta       float64                         `json:"beta"`
	ReturnPct  float64                         `json:"return_pct"`
	Statistics map[string]FeatureStatsResponse `json:"statistics"`
}

// BasketResponse summarizes a basket of instruments plus its risk-free
// reference instrument.
type BasketResponse struct {
	StartDate        string                          `json:"start_date"`
	EndDate          string                          `json:"end_date"`
	Members          []InstrumentResponse            `json:"members"`
	RiskFree         InstrumentResponse              `json:"risk_free"`
	Statistics       map[string]FeatureStatsResponse `json:"statistics"`
	AverageReturnPct float64                         `json:"average_return_pct"`
}

// ReturnsResponse carries the three return figures of a comparison.
type ReturnsResponse struct {
	Instrument    float64 `json:"instrument"`
	BasketAverage float64 `json:"basket_average"`
	RiskFree      float64 `json:"risk_free"`
}

// ComparisonResponse composes one instrument against a basket baseline.
type ComparisonResponse struct {
	Instrument InstrumentResponse `json:"instrument"`
	Basket     BasketResponse     `json:"basket"`
	Returns    ReturnsResponse    `json:"returns"`
}
