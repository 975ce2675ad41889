package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stocker_backend/internal/api"
	"stocker_backend/internal/feature/instruments/usecase"
)

// BasketsUsecase はバスケット取得のユースケースインターフェースを定義します。
type BasketsUsecase interface {
	GetBasket(ctx context.Context, tickers []string, riskFreeTicker, start, end string) (*usecase.Basket, error)
}

// BasketsHandler はバスケット統計のHTTPリクエストを処理します。
type BasketsHandler struct {
	uc BasketsUsecase
}

// NewBasketsHandler は指定されたusecaseでBasketsHandlerの新しいインスタンスを生成します。
func NewBasketsHandler(uc BasketsUsecase) *BasketsHandler {
	return &BasketsHandler{uc: uc}
}

// splitTickers はカンマ区切りのティッカーリストを分割します。
// 空の要素は除外します。正規化は銘柄ごとにusecase側で行われます。
func splitTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// GetBasketHandler はメンバーティッカーとリスクフリーティッカーを受け取り、
// バスケット統計と平均リターンをJSONで返します。
//
// エンドポイント例:
// GET /baskets?tickers=msft,tsla,spy&risk_free=SPTI&start=2023-01-01&end=2023-06-01
func (h *BasketsHandler) GetBasketHandler(c *gin.Context) {
	tickers := splitTickers(c.Query("tickers"))
	riskFree := c.Query("risk_free")
	if riskFree == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "risk_free ticker is required"})
		return
	}
	start := c.Query("start")
	end := c.Query("end")

	basket, err := h.uc.GetBasket(c.Request.Context(), tickers, riskFree, start, end)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toBasketResponse(basket))
}
