package entity

import (
	"fmt"
	"math"

	"stocker_backend/internal/feature/instruments/domain"
)

// Feature names for the per-bar columns that statistics are aggregated over.
const (
	FeatureOpen      = "open"
	FeatureClose     = "close"
	FeatureHigh      = "high"
	FeatureLow       = "low"
	FeatureCloseOpen = "close_open"
	FeatureHighLow   = "high_low"
)

// Features lists every aggregated column, raw columns first.
var Features = []string{
	FeatureOpen,
	FeatureClose,
	FeatureHigh,
	FeatureLow,
	FeatureCloseOpen,
	FeatureHighLow,
}

// FeatureStats holds the descriptive statistics of one feature column.
// Variance and StdDev follow the sample (n-1) convention; a single-bar
// series therefore yields NaN for both.
type FeatureStats struct {
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// StatSet maps a feature name to its aggregated statistics.
type StatSet map[string]FeatureStats

// featureValue extracts the named column from a bar.
func featureValue(b Bar, feature string) float64 {
	switch feature {
	case FeatureOpen:
		return b.Open
	case FeatureClose:
		return b.Close
	case FeatureHigh:
		return b.High
	case FeatureLow:
		return b.Low
	case FeatureCloseOpen:
		return b.Close - b.Open
	case FeatureHighLow:
		return b.High - b.Low
	}
	return 0
}

// ComputeStatSet aggregates every feature column of the series.
// Returns ErrInsufficientData for an empty series.
func ComputeStatSet(bars []Bar) (StatSet, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("compute statistics: %w", domain.ErrInsufficientData)
	}

	stats := make(StatSet, len(Features))
	n := float64(len(bars))
	for _, f := range Features {
		var sum float64
		min := math.Inf(1)
		max := math.Inf(-1)
		for _, b := range bars {
			v := featureValue(b, f)
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		mean := sum / n

		var ss float64
		for _, b := range bars {
			d := featureValue(b, f) - mean
			ss += d * d
		}
		// 0/0 for a single bar, i.e. NaN per the sample convention
		variance := ss / (n - 1)

		stats[f] = FeatureStats{
			Mean:     mean,
			Variance: variance,
			StdDev:   math.Sqrt(variance),
			Min:      min,
			Max:      max,
		}
	}
	return stats, nil
}

// PeriodReturn is the fractional price change from the first bar's open to
// the last bar's close. Returns ErrInsufficientData for an empty series.
// A zero opening price is not guarded; IEEE semantics (+Inf/NaN) propagate.
func PeriodReturn(bars []Bar) (float64, error) {
	if len(bars) == 0 {
		return 0, fmt.Errorf("period return: %w", domain.ErrInsufficientData)
	}
	first := bars[0].Open
	last := bars[len(bars)-1].Close
	return (last - first) / first, nil
}
