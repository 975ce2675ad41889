package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocker_backend/internal/api"
	"stocker_backend/internal/feature/instruments/domain/entity"
	"stocker_backend/internal/feature/instruments/usecase"
)

// InstrumentsUsecase は銘柄取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InstrumentsUsecase interface {
	GetInstrument(ctx context.Context, ticker, start, end string) (*usecase.Instrument, error)
	GetSeries(ctx context.Context, ticker, start, end string) ([]entity.Bar, error)
}

// InstrumentsHandler は銘柄統計のHTTPリクエストを処理します。
type InstrumentsHandler struct {
	uc InstrumentsUsecase
}

// NewInstrumentsHandler は指定されたusecaseでInstrumentsHandlerの新しいインスタンスを生成します。
func NewInstrumentsHandler(uc InstrumentsUsecase) *InstrumentsHandler {
	return &InstrumentsHandler{uc: uc}
}

// GetInstrumentHandler はティッカーと日付範囲を受け取り、
// 銘柄のサマリー（ベータ・期間リターン・統計量）をJSONで返します。
//
// エンドポイント例:
// GET /instruments/:ticker?start=2023-01-01&end=2023-06-01
func (h *InstrumentsHandler) GetInstrumentHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	// 未指定の場合はusecase側でデフォルト範囲（直近1年）が補われる
	start := c.Query("start")
	end := c.Query("end")

	inst, err := h.uc.GetInstrument(c.Request.Context(), ticker, start, end)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toInstrumentResponse(inst))
}

// GetSeriesHandler は派生列付きのOHLC時系列をJSONで返します。
//
// エンドポイント例:
// GET /instruments/:ticker/series?start=2023-01-01&end=2023-06-01
func (h *InstrumentsHandler) GetSeriesHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	start := c.Query("start")
	end := c.Query("end")

	bars, err := h.uc.GetSeries(c.Request.Context(), ticker, start, end)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toBarResponses(bars))
}
