package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stocker_backend/internal/feature/instruments/domain"
)

// chartJSON は2営業日分と休場日のnullスロット1つを含むchartレスポンスです。
const chartJSON = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "TSLA"},
      "timestamp": [1672617600, 1672704000, 1672790400],
      "indicators": {
        "quote": [{
          "open":   [108.1, null, 110.5],
          "high":   [112.0, null, 114.2],
          "low":    [104.6, null, 107.3],
          "close":  [110.3, null, 112.9],
          "volume": [231402800, null, 180389000]
        }]
      }
    }],
    "error": null
  }
}`

const quoteSummaryJSON = `{
  "quoteSummary": {
    "result": [{
      "defaultKeyStatistics": {
        "beta": {"raw": 2.04, "fmt": "2.04"}
      }
    }],
    "error": null
  }
}`

// TestYahooMarket_GetSeries は時系列取得のマッピングとnullスロットの除外、
// end排他のクエリパラメータを検証します。
func TestYahooMarket_GetSeries(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/TSLA" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, chartJSON)
	}))
	defer srv.Close()

	market := NewYahooMarket(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, srv.Client(), nil)
	bars, err := market.GetSeries(context.Background(), "TSLA", "2023-01-02", "2023-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// nullスロットが1つ除外される
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	first := bars[0]
	if first.Open != 108.1 || first.High != 112.0 || first.Low != 104.6 || first.Close != 110.3 {
		t.Errorf("first bar = %+v", first)
	}
	if first.Ticker != "TSLA" {
		t.Errorf("ticker = %q, want TSLA", first.Ticker)
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not in ascending time order")
	}

	// period1/period2 は日付の0時UTC（endは排他）
	wantStart := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	wantEnd := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC).Unix()
	want := fmt.Sprintf("interval=1d&period1=%d&period2=%d", wantStart, wantEnd)
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

// TestYahooMarket_GetSeries_UnknownTicker はAPIエラーと404応答が
// ErrDataUnavailableに対応付けられることを検証します。
func TestYahooMarket_GetSeries_UnknownTicker(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "api error object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
			},
		},
		{
			name: "http 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "empty result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			market := NewYahooMarket(Config{BaseURL: srv.URL}, srv.Client(), nil)
			_, err := market.GetSeries(context.Background(), "ZZZZINVALID", "2023-01-01", "2023-06-01")
			if !errors.Is(err, domain.ErrDataUnavailable) {
				t.Fatalf("expected ErrDataUnavailable, got %v", err)
			}
		})
	}
}

// TestYahooMarket_GetSeries_BadDates は不正な日付が取得前に失敗することを検証します。
func TestYahooMarket_GetSeries_BadDates(t *testing.T) {
	market := NewYahooMarket(Config{BaseURL: "http://127.0.0.1:0"}, http.DefaultClient, nil)
	if _, err := market.GetSeries(context.Background(), "TSLA", "01/02/2023", "2023-06-01"); err == nil {
		t.Fatal("expected error for malformed start date")
	}
	if _, err := market.GetSeries(context.Background(), "TSLA", "2023-01-01", "soon"); err == nil {
		t.Fatal("expected error for malformed end date")
	}
}

// TestYahooMarket_GetMetadata はベータ値の取得を検証します。
func TestYahooMarket_GetMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v10/finance/quoteSummary/TSLA" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("modules"); got != "defaultKeyStatistics" {
			t.Errorf("modules = %q", got)
		}
		fmt.Fprint(w, quoteSummaryJSON)
	}))
	defer srv.Close()

	market := NewYahooMarket(Config{BaseURL: srv.URL}, srv.Client(), nil)
	meta, err := market.GetMetadata(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Ticker != "TSLA" {
		t.Errorf("ticker = %q, want TSLA", meta.Ticker)
	}
	if meta.Beta != 2.04 {
		t.Errorf("beta = %v, want 2.04", meta.Beta)
	}
}

// TestYahooMarket_GetMetadata_Unknown は未知銘柄のエラーマッピングを検証します。
func TestYahooMarket_GetMetadata_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found"}}}`)
	}))
	defer srv.Close()

	market := NewYahooMarket(Config{BaseURL: srv.URL}, srv.Client(), nil)
	_, err := market.GetMetadata(context.Background(), "ZZZZINVALID")
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}
