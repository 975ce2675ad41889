package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stocker_backend/internal/feature/instruments/domain"
	"stocker_backend/internal/feature/instruments/domain/entity"
	"stocker_backend/internal/feature/instruments/usecase"
	"stocker_backend/internal/platform/externalapi/yahoo/dto"
	"stocker_backend/internal/shared/ratelimiter"
)

// YahooMarket はYahoo Finance外部APIから株価データを取得するMarketRepository実装です。
//
// 日付範囲は [start, end) の end 排他として扱います。
// period1 = start の0時UTC、period2 = end の0時UTCをそのまま渡すため、
// end 当日のバーは含まれません。
type YahooMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
// limiter はnilでもよく、その場合レート制限なしで動作します。
func NewYahooMarket(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *YahooMarket {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &YahooMarket{cfg: cfg, client: client, limiter: limiter}
}

// get はレート制限付きでGETリクエストを実行し、レスポンスボディをoutにデコードします。
func (y *YahooMarket) get(ctx context.Context, u string, out any) error {
	if y.limiter != nil {
		y.limiter.WaitIfNeeded()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	// Yahooのパブリックエンドポイントはブラウザ由来でないUAを拒否することがある
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := y.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 未知銘柄はYahoo側が404を返す
	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("yahoo http 404: %w", domain.ErrDataUnavailable)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// GetMetadata はquoteSummary APIから銘柄メタデータ（ベータ値）を取得します。
func (y *YahooMarket) GetMetadata(ctx context.Context, ticker string) (entity.InstrumentMeta, error) {
	q := url.Values{}
	q.Set("modules", "defaultKeyStatistics")
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	var body dto.QuoteSummaryResponse
	if err := y.get(ctx, u, &body); err != nil {
		return entity.InstrumentMeta{}, fmt.Errorf("metadata %s: %w", ticker, err)
	}
	if body.QuoteSummary.Error != nil {
		return entity.InstrumentMeta{}, fmt.Errorf("metadata %s: %s: %w", ticker, body.QuoteSummary.Error.Description, domain.ErrDataUnavailable)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return entity.InstrumentMeta{}, fmt.Errorf("metadata %s: empty result: %w", ticker, domain.ErrDataUnavailable)
	}

	// ベータ値が未報告の銘柄は0のまま通す（この層では解釈しない）
	return entity.InstrumentMeta{
		Ticker: ticker,
		Beta:   body.QuoteSummary.Result[0].DefaultKeyStatistics.Beta.Raw,
	}, nil
}

// GetSeries はchart APIから日足のOHLC時系列を取得し、
// entity.Barのスライスとして時刻昇順で返します。
func (y *YahooMarket) GetSeries(ctx context.Context, ticker, start, end string) ([]entity.Bar, error) {
	startT, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("parse start %q: %w", start, err)
	}
	endT, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("parse end %q: %w", end, err)
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("period1", fmt.Sprintf("%d", startT.UTC().Unix()))
	q.Set("period2", fmt.Sprintf("%d", endT.UTC().Unix()))
	q.Set("interval", "1d")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	var body dto.ChartResponse
	if err := y.get(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("series %s: %w", ticker, err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("series %s: %s: %w", ticker, body.Chart.Error.Description, domain.ErrDataUnavailable)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("series %s: no data returned: %w", ticker, domain.ErrDataUnavailable)
	}

	result := body.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("series %s: no quote data: %w", ticker, domain.ErrDataUnavailable)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]entity.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		o, h, l, c := quote.Open[i], quote.High[i], quote.Low[i], quote.Close[i]
		// 休場日などのnullスロットはゼロ値になるため除外する
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue
		}
		var v float64
		if i < len(quote.Volume) {
			v = quote.Volume[i]
		}
		bars = append(bars, entity.Bar{
			Ticker: ticker,
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: v,
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
