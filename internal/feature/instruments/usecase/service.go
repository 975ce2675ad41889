package usecase

import (
	"context"
	"fmt"
	"time"

	"stocker_backend/internal/feature/instruments/domain"
	"stocker_backend/internal/feature/instruments/domain/entity"
)

// DefaultRangeYears は日付範囲が未指定の場合に使うデフォルトの年数です。
const DefaultRangeYears = 1

// Service は銘柄・バスケット・比較の取得ユースケースをまとめたファサードです。
type Service struct {
	market MarketRepository
}

// NewService は指定されたリポジトリでServiceの新しいインスタンスを生成します。
func NewService(market MarketRepository) *Service {
	return &Service{market: market}
}

// resolveRange は日付範囲を検証し、未指定の場合はデフォルト値を補います。
// end が空なら今日、start が空なら end の1年前になります。
func resolveRange(start, end string) (string, string, error) {
	if end == "" {
		end = time.Now().UTC().Format(DateLayout)
	}
	endT, err := time.Parse(DateLayout, end)
	if err != nil {
		return "", "", fmt.Errorf("end date %q: %w", end, domain.ErrInvalidDateRange)
	}
	if start == "" {
		start = endT.AddDate(-DefaultRangeYears, 0, 0).Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, start); err != nil {
		return "", "", fmt.Errorf("start date %q: %w", start, domain.ErrInvalidDateRange)
	}
	return start, end, nil
}

// GetInstrument は指定範囲のInstrumentを構築して返します。
func (s *Service) GetInstrument(ctx context.Context, ticker, start, end string) (*Instrument, error) {
	start, end, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}
	return NewInstrument(ctx, s.market, ticker, start, end)
}

// GetSeries は状態を持たない一時的な時系列クエリを実行します。
func (s *Service) GetSeries(ctx context.Context, ticker, start, end string) ([]entity.Bar, error) {
	start, end, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}
	raw, err := s.market.GetSeries(ctx, NormalizeTicker(ticker), start, end)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("series %s [%s, %s): %w", NormalizeTicker(ticker), start, end, domain.ErrDataUnavailable)
	}
	return entity.Derive(raw), nil
}

// GetBasket は指定範囲のBasketを構築して返します。
func (s *Service) GetBasket(ctx context.Context, tickers []string, riskFreeTicker, start, end string) (*Basket, error) {
	start, end, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}
	return NewBasket(ctx, s.market, tickers, riskFreeTicker, start, end)
}

// GetComparison は指定範囲のComparisonを構築して返します。
func (s *Service) GetComparison(ctx context.Context, ticker string, basketTickers []string, riskFreeTicker, start, end string) (*Comparison, error) {
	start, end, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}
	return NewComparison(ctx, s.market, ticker, basketTickers, riskFreeTicker, start, end)
}
