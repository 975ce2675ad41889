// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを生成します。
// rdb がnilでない場合はRedisへPingし、キャッシュ層の状態もあわせて返します。
// キャッシュが落ちていてもサービス自体は動作するため、ステータスは常に200です。
func NewHealth(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		// ボディ不要のメソッドは即応答する
		switch c.Request.Method {
		case "HEAD":
			c.Status(200)
			return
		case "OPTIONS":
			c.Status(204)
			return
		}

		cacheStatus := "disabled"
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				cacheStatus = "down"
			} else {
				cacheStatus = "ok"
			}
		}

		c.JSON(200, gin.H{"status": "ok", "cache": cacheStatus})
	}
}
