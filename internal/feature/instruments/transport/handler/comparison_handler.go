package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocker_backend/internal/api"
	"stocker_backend/internal/feature/instruments/usecase"
)

// ComparisonsUsecase は比較取得のユースケースインターフェースを定義します。
type ComparisonsUsecase interface {
	GetComparison(ctx context.Context, ticker string, basketTickers []string, riskFreeTicker, start, end string) (*usecase.Comparison, error)
}

// ComparisonsHandler は銘柄対バスケット比較のHTTPリクエストを処理します。
type ComparisonsHandler struct {
	uc ComparisonsUsecase
}

// NewComparisonsHandler は指定されたusecaseでComparisonsHandlerの新しいインスタンスを生成します。
func NewComparisonsHandler(uc ComparisonsUsecase) *ComparisonsHandler {
	return &ComparisonsHandler{uc: uc}
}

// GetComparisonHandler は注目銘柄・バスケットメンバー・リスクフリーティッカーを
// 受け取り、両者のサマリーと3つの期間リターンをJSONで返します。
//
// エンドポイント例:
// GET /comparisons/:ticker?basket=msft,spy&risk_free=SPTI&start=2023-01-01&end=2023-06-01
func (h *ComparisonsHandler) GetComparisonHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	basketTickers := splitTickers(c.Query("basket"))
	riskFree := c.Query("risk_free")
	if riskFree == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "risk_free ticker is required"})
		return
	}
	start := c.Query("start")
	end := c.Query("end")

	cmp, err := h.uc.GetComparison(c.Request.Context(), ticker, basketTickers, riskFree, start, end)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	rets := cmp.Returns()
	c.JSON(http.StatusOK, api.ComparisonResponse{
		Instrument: toInstrumentResponse(cmp.Instrument()),
		Basket:     toBasketResponse(cmp.Basket()),
		Returns: api.ReturnsResponse{
			Instrument:    rets.Instrument,
			BasketAverage: rets.BasketAverage,
			RiskFree:      rets.RiskFree,
		},
	})
}
