package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	instrumentshandler "stocker_backend/internal/feature/instruments/transport/handler"
	platformhandler "stocker_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したgin.Engineを生成します。
// rdb はヘルスチェックのキャッシュ状態報告に使われ、nilでもかまいません。
func NewRouter(instruments *instrumentshandler.InstrumentsHandler,
	baskets *instrumentshandler.BasketsHandler,
	comparisons *instrumentshandler.ComparisonsHandler,
	rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	health := platformhandler.NewHealth(rdb)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	// 銘柄サマリーと時系列
	r.GET("/instruments/:ticker", instruments.GetInstrumentHandler)
	r.GET("/instruments/:ticker/series", instruments.GetSeriesHandler)
	// バスケット統計
	r.GET("/baskets", baskets.GetBasketHandler)
	// 銘柄対バスケット比較
	r.GET("/comparisons/:ticker", comparisons.GetComparisonHandler)

	return r
}
