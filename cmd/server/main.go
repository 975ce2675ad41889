package main

import (
	"log"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stocker_backend/internal/app/config"
	"stocker_backend/internal/app/router"
	instrumentshandler "stocker_backend/internal/feature/instruments/transport/handler"
	"stocker_backend/internal/feature/instruments/usecase"
	"stocker_backend/internal/platform/cache"
	"stocker_backend/internal/platform/externalapi/yahoo"
	platformhttp "stocker_backend/internal/platform/http"
	infraredis "stocker_backend/internal/platform/redis"
	"stocker_backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Redis（未設定なら キャッシュなしで動作）
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		slog.Warn("Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// 外部プロバイダー
	limiter := ratelimiter.NewRateLimiter(cfg.Provider.RequestsPerMinute, time.Minute)
	client := platformhttp.NewHTTPClient(cfg.Provider.Timeout)
	market := yahoo.NewYahooMarket(yahoo.Config{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout,
	}, client, limiter)

	// Redisキャッシュでラップ
	cachedMarket := cache.NewCachingMarketRepository(rdb, cfg.Redis.TTL, market, "market")

	// Usecase
	svc := usecase.NewService(cachedMarket)

	// Handler
	instrumentsH := instrumentshandler.NewInstrumentsHandler(svc)
	basketsH := instrumentshandler.NewBasketsHandler(svc)
	comparisonsH := instrumentshandler.NewComparisonsHandler(svc)

	// ルータ生成
	r := router.NewRouter(instrumentsH, basketsH, comparisonsH, rdb)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
