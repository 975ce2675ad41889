package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"stocker_backend/internal/feature/instruments/domain"
	"stocker_backend/internal/feature/instruments/domain/entity"
)

// maxConcurrentFetches はバスケット構築時に同時実行するプロバイダー取得数の上限です。
const maxConcurrentFetches = 4

// basketFeatures はバスケット統計の対象となる列です。派生列は含みません。
var basketFeatures = []string{
	entity.FeatureOpen,
	entity.FeatureClose,
	entity.FeatureHigh,
	entity.FeatureLow,
}

// Basket は複数のメンバー銘柄とリスクフリー銘柄を同一の日付範囲で保持します。
// バスケット統計はメンバー各銘柄の統計量の非加重算術平均です。
// 生のバーをプールして再計算するのではなく、平均済みの値を平均します。
// 日付範囲を変える場合はBasketを作り直します（セッターはありません）。
type Basket struct {
	start string
	end   string

	members  []*Instrument
	riskFree *Instrument

	stats     entity.StatSet
	avgReturn float64
}

// NewBasket はティッカーごとに1つのInstrument（呼び出し順を保持）と、
// 別途取得するリスクフリーInstrumentを構築します。
// 空のティッカーリストは domain.ErrEmptyBasket で失敗します。
// メンバーの取得は同時に実行されますが、1件でも失敗した場合は
// 部分的な結果を破棄して全体が失敗します（all-or-nothing）。
func NewBasket(ctx context.Context, market MarketRepository, tickers []string, riskFreeTicker, start, end string) (*Basket, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("basket [%s, %s): %w", start, end, domain.ErrEmptyBasket)
	}

	members := make([]*Instrument, len(tickers))
	var riskFree *Instrument

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, t := range tickers {
		g.Go(func() error {
			inst, err := NewInstrument(gctx, market, t, start, end)
			if err != nil {
				return err
			}
			members[i] = inst
			return nil
		})
	}
	g.Go(func() error {
		inst, err := NewInstrument(gctx, market, riskFreeTicker, start, end)
		if err != nil {
			return err
		}
		riskFree = inst
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Basket{
		start:     start,
		end:       end,
		members:   members,
		riskFree:  riskFree,
		stats:     averageStats(members),
		avgReturn: averageReturn(members),
	}, nil
}

// averageStats はメンバー各銘柄の統計量を特徴量ごとに非加重平均します。
// リスクフリー銘柄は含みません。
func averageStats(members []*Instrument) entity.StatSet {
	n := float64(len(members))
	stats := make(entity.StatSet, len(basketFeatures))
	for _, f := range basketFeatures {
		var agg entity.FeatureStats
		for _, m := range members {
			fs := m.Statistics()[f]
			agg.Mean += fs.Mean
			agg.Variance += fs.Variance
			agg.StdDev += fs.StdDev
			agg.Min += fs.Min
			agg.Max += fs.Max
		}
		agg.Mean /= n
		agg.Variance /= n
		agg.StdDev /= n
		agg.Min /= n
		agg.Max /= n
		stats[f] = agg
	}
	return stats
}

// averageReturn はメンバー各銘柄の期間リターンの非加重平均を返します。
func averageReturn(members []*Instrument) float64 {
	var sum float64
	for _, m := range members {
		sum += m.ReturnPct()
	}
	return sum / float64(len(members))
}

// Statistics は構築時に計算済みのバスケット統計を返します。
// 対象列は open/close/high/low のみです。
func (b *Basket) Statistics() entity.StatSet { return b.stats }

// AverageReturnPct はメンバー銘柄の期間リターンの非加重平均を返します。
func (b *Basket) AverageReturnPct() float64 { return b.avgReturn }

// Members はメンバー銘柄を呼び出し時の順序で返します。
func (b *Basket) Members() []*Instrument { return b.members }

// RiskFree はリスクフリー銘柄を返します。
func (b *Basket) RiskFree() *Instrument { return b.riskFree }

// StartDate はバスケットの日付範囲の開始日を返します。
func (b *Basket) StartDate() string { return b.start }

// EndDate はバスケットの日付範囲の終了日（排他）を返します。
func (b *Basket) EndDate() string { return b.end }
