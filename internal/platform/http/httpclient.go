// Package http は外部プロバイダー呼び出し用のHTTPクライアント設定を提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// 相場データAPIは1銘柄ごとに短いGETを繰り返すため、
// 接続の再利用を優先した設定にしています。
const (
	dialTimeout     = 5 * time.Second
	keepAlive       = 30 * time.Second
	maxIdleConns    = 100
	idleConnTimeout = 90 * time.Second
	tlsTimeout      = 5 * time.Second
)

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
// timeout はリクエスト全体の上限です。
// http.DefaultClient にはタイムアウトがないため、必ずこちらを使うこと。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsTimeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
