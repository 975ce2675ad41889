// Package usecase は銘柄・バスケット・比較の統計計算ビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"stocker_backend/internal/feature/instruments/domain"
	"stocker_backend/internal/feature/instruments/domain/entity"
)

// DateLayout は外部プロバイダーとやり取りする日付のフォーマットです。
const DateLayout = "2006-01-02"

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
//
// 日付は ISO yyyy-mm-dd 形式で、範囲は [start, end) の end 排他です。
type MarketRepository interface {
	// GetMetadata は銘柄のメタデータ（ベータ値など）を取得します。
	// 未知の銘柄の場合は domain.ErrDataUnavailable をラップしたエラーを返します。
	GetMetadata(ctx context.Context, ticker string) (entity.InstrumentMeta, error)
	// GetSeries は指定範囲のOHLC時系列を時刻昇順で取得します。
	GetSeries(ctx context.Context, ticker, start, end string) ([]entity.Bar, error)
}

// NormalizeTicker はティッカーを正規化します。
// 大文字に変換し、空白区切りの最初のトークンのみを残します（" msft corp" → "MSFT"）。
func NormalizeTicker(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// Instrument は1つの銘柄の取得済み時系列・派生列・統計量を保持します。
// ティッカーまたは日付範囲の変更は全件再取得と統計の再計算を伴います。
// 差分更新の経路はありません。
type Instrument struct {
	market MarketRepository

	ticker string
	start  string
	end    string

	beta      float64
	bars      []entity.Bar
	stats     entity.StatSet
	returnPct float64
}

// NewInstrument はティッカーを正規化し、メタデータと時系列を取得して
// Instrumentを生成します。プロバイダーがデータを返さない場合は
// domain.ErrDataUnavailable をラップしたエラーで失敗し、部分的に
// 初期化されたオブジェクトは公開されません。
func NewInstrument(ctx context.Context, market MarketRepository, ticker, start, end string) (*Instrument, error) {
	inst := &Instrument{
		market: market,
		ticker: NormalizeTicker(ticker),
		start:  start,
		end:    end,
	}
	if err := inst.refresh(ctx); err != nil {
		return nil, err
	}
	return inst, nil
}

// refresh はメタデータと時系列を取得し直し、派生列と統計量を再計算します。
// すべて成功した場合のみ状態を入れ替えるため、失敗時に途中状態は残りません。
// 生成時とミューテーター経由の更新はこの1本の経路を共有します。
func (s *Instrument) refresh(ctx context.Context) error {
	meta, err := s.market.GetMetadata(ctx, s.ticker)
	if err != nil {
		return err
	}

	raw, err := s.market.GetSeries(ctx, s.ticker, s.start, s.end)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("instrument %s [%s, %s): %w", s.ticker, s.start, s.end, domain.ErrDataUnavailable)
	}

	bars := entity.Derive(raw)
	stats, err := entity.ComputeStatSet(bars)
	if err != nil {
		return err
	}
	ret, err := entity.PeriodReturn(bars)
	if err != nil {
		return err
	}

	s.beta = meta.Beta
	s.bars = bars
	s.stats = stats
	s.returnPct = ret
	return nil
}

// SetTicker はティッカーを正規化して差し替え、既存の日付範囲で
// 時系列と統計量をすべて取得・計算し直します。
// 失敗した場合、呼び出し元から見える状態は一切変化しません。
func (s *Instrument) SetTicker(ctx context.Context, ticker string) error {
	next := *s
	next.ticker = NormalizeTicker(ticker)
	if err := next.refresh(ctx); err != nil {
		return err
	}
	*s = next
	return nil
}

// SetStartDate は開始日を差し替え、既存のティッカーで再取得・再計算します。
func (s *Instrument) SetStartDate(ctx context.Context, start string) error {
	next := *s
	next.start = start
	if err := next.refresh(ctx); err != nil {
		return err
	}
	*s = next
	return nil
}

// SetEndDate は終了日を差し替え、既存のティッカーで再取得・再計算します。
func (s *Instrument) SetEndDate(ctx context.Context, end string) error {
	next := *s
	next.end = end
	if err := next.refresh(ctx); err != nil {
		return err
	}
	*s = next
	return nil
}

// FetchSeries は任意の範囲の時系列を派生列付きで取得する純粋なクエリです。
// Instrumentの状態は変更しません。
func (s *Instrument) FetchSeries(ctx context.Context, start, end string) ([]entity.Bar, error) {
	raw, err := s.market.GetSeries(ctx, s.ticker, start, end)
	if err != nil {
		return nil, err
	}
	return entity.Derive(raw), nil
}

// Statistics は最後に取得した時系列に対する統計量を返します。
// 再取得は行いません。
func (s *Instrument) Statistics() entity.StatSet { return s.stats }

// ReturnPct は期間リターン（最初のバーの始値から最後のバーの終値までの変化率）を返します。
func (s *Instrument) ReturnPct() float64 { return s.returnPct }

// Beta はプロバイダーのメタデータ由来のベータ値を返します。
func (s *Instrument) Beta() float64 { return s.beta }

// Ticker は正規化済みのティッカーを返します。
func (s *Instrument) Ticker() string { return s.ticker }

// StartDate は現在の取得範囲の開始日を返します。
func (s *Instrument) StartDate() string { return s.start }

// EndDate は現在の取得範囲の終了日（排他）を返します。
func (s *Instrument) EndDate() string { return s.end }

// Bars は最後に取得した派生列付きの時系列を返します。
func (s *Instrument) Bars() []entity.Bar { return s.bars }
