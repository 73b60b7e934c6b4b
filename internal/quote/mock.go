package quote

import (
	"context"
	"fmt"
	"math"

	"social-momentum-scanner/internal/types"
)

// MockProvider serves canned quote data for tests and offline demo runs.
type MockProvider struct {
	Prices    map[string]float64
	Histories map[string]*types.Quote
	Errs      map[string]error

	PriceCalls   []string
	HistoryCalls []string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Prices:    make(map[string]float64),
		Histories: make(map[string]*types.Quote),
		Errs:      make(map[string]error),
	}
}

func (m *MockProvider) Price(ctx context.Context, symbol string) (float64, error) {
	m.PriceCalls = append(m.PriceCalls, symbol)
	if err, ok := m.Errs[symbol]; ok {
		return 0, err
	}
	price, ok := m.Prices[symbol]
	if !ok {
		return 0, fmt.Errorf("unknown symbol %s", symbol)
	}
	return price, nil
}

func (m *MockProvider) History(ctx context.Context, symbol string) (*types.Quote, error) {
	m.HistoryCalls = append(m.HistoryCalls, symbol)
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	q, ok := m.Histories[symbol]
	if !ok {
		return nil, fmt.Errorf("no history for %s", symbol)
	}
	return q, nil
}

// DemoQuote generates a deterministic trending price series, used by the
// indicator viewer's offline mode and pipeline tests.
func DemoQuote(symbol string, bars int, base float64) *types.Quote {
	q := &types.Quote{Symbol: symbol}
	price := base
	for i := 0; i < bars; i++ {
		// Gentle uptrend with a repeating wobble.
		drift := base * 0.002
		wobble := base * 0.01 * math.Sin(float64(i)/3)
		price += drift + wobble
		q.Bars = append(q.Bars, types.Bar{
			Ts:     int64(i) * 86400,
			Open:   price - drift,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: 1_000_000 + 50_000*float64(i%7),
		})
	}
	q.RegularMarketPrice = price
	low := base * 0.9
	high := price * 1.1
	q.Low52W, q.High52W = &low, &high
	return q
}
