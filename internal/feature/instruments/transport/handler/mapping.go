// Package handler はinstrumentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"net/http"

	"stocker_backend/internal/api"
	"stocker_backend/internal/feature/instruments/domain"
	"stocker_backend/internal/feature/instruments/domain/entity"
	"stocker_backend/internal/feature/instruments/usecase"
)

// statusFor はドメインエラーをHTTPステータスコードに対応付けます。
// プロバイダー起因のその他の失敗は502になります。
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyBasket), errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// toStatsResponse はStatSetをレスポンスDTOに変換します。
func toStatsResponse(stats entity.StatSet) map[string]api.FeatureStatsResponse {
	out := make(map[string]api.FeatureStatsResponse, len(stats))
	for f, fs := range stats {
		out[f] = api.FeatureStatsResponse{
			Mean:     fs.Mean,
			Variance: fs.Variance,
			StdDev:   fs.StdDev,
			Min:      fs.Min,
			Max:      fs.Max,
		}
	}
	return out
}

// toInstrumentResponse はInstrumentをレスポンスDTOに変換します。
func toInstrumentResponse(inst *usecase.Instrument) api.InstrumentResponse {
	return api.InstrumentResponse{
		Ticker:     inst.Ticker(),
		StartDate:  inst.StartDate(),
		EndDate:    inst.EndDate(),
		Beta:       inst.Beta(),
		ReturnPct:  inst.ReturnPct(),
		Statistics: toStatsResponse(inst.Statistics()),
	}
}

// toBasketResponse はBasketをレスポンスDTOに変換します。
func toBasketResponse(b *usecase.Basket) api.BasketResponse {
	members := make([]api.InstrumentResponse, 0, len(b.Members()))
	for _, m := range b.Members() {
		members = append(members, toInstrumentResponse(m))
	}
	return api.BasketResponse{
		StartDate:        b.StartDate(),
		EndDate:          b.EndDate(),
		Members:          members,
		RiskFree:         toInstrumentResponse(b.RiskFree()),
		Statistics:       toStatsResponse(b.Statistics()),
		AverageReturnPct: b.AverageReturnPct(),
	}
}

// toBarResponses は派生列付きの時系列をレスポンスDTOに変換します。
func toBarResponses(bars []entity.Bar) []api.BarResponse {
	out := make([]api.BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, api.BarResponse{
			Time:      b.Time.UTC().Format("2006-01-02"),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
			CloseOpen: b.CloseOpen,
			HighLow:   b.HighLow,
		})
	}
	return out
}
