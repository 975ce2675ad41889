package usecase

import "context"

// RelativeReturns は比較対象の3つの期間リターンをまとめたものです。
type RelativeReturns struct {
	Instrument    float64
	BasketAverage float64
	RiskFree      float64
}

// Comparison は1つの注目銘柄と1つのバスケットを同一の日付範囲で合成します。
// 相対パフォーマンスの計算自体は呼び出し元に委ねる薄いコンポジットです。
type Comparison struct {
	instrument *Instrument
	basket     *Basket
}

// NewComparison は注目銘柄のInstrumentとメンバーティッカーからなるBasketを
// 同じ日付範囲で構築します。いずれかの構築が失敗すると全体が失敗します。
func NewComparison(ctx context.Context, market MarketRepository, ticker string, basketTickers []string, riskFreeTicker, start, end string) (*Comparison, error) {
	inst, err := NewInstrument(ctx, market, ticker, start, end)
	if err != nil {
		return nil, err
	}
	basket, err := NewBasket(ctx, market, basketTickers, riskFreeTicker, start, end)
	if err != nil {
		return nil, err
	}
	return &Comparison{instrument: inst, basket: basket}, nil
}

// Instrument は注目銘柄を返します。
func (c *Comparison) Instrument() *Instrument { return c.instrument }

// Basket は比較対象のバスケットを返します。
func (c *Comparison) Basket() *Basket { return c.basket }

// Returns は注目銘柄・バスケット平均・リスクフリーの期間リターンを返します。
func (c *Comparison) Returns() RelativeReturns {
	return RelativeReturns{
		Instrument:    c.instrument.ReturnPct(),
		BasketAverage: c.basket.AverageReturnPct(),
		RiskFree:      c.basket.RiskFree().ReturnPct(),
	}
}
