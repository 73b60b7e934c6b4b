// Package indicators turns a price history into a TechnicalSnapshot.
// Computation is pure; fetching is delegated to the quote collaborator.
package indicators

import (
	"context"
	"fmt"
	"math"
	"time"

	"social-momentum-scanner/internal/interfaces"
	"social-momentum-scanner/internal/ratelimit"
	"social-momentum-scanner/internal/ta"
	"social-momentum-scanner/internal/types"
)

// Config holds the indicator windows. Zero values fall back to defaults.
type Config struct {
	SMAShort   int     // default 20
	SMALong    int     // default 50
	RSIPeriod  int     // default 14
	BBWindow   int     // default 20
	BBStdDev   float64 // default 2.0
	RecentBars int     // volume ratio lookback, default 5
}

func (c Config) withDefaults() Config {
	if c.SMAShort <= 0 {
		c.SMAShort = 20
	}
	if c.SMALong <= 0 {
		c.SMALong = 50
	}
	if c.RSIPeriod <= 0 {
		c.RSIPeriod = 14
	}
	if c.BBWindow <= 0 {
		c.BBWindow = 20
	}
	if c.BBStdDev <= 0 {
		c.BBStdDev = 2.0
	}
	if c.RecentBars <= 0 {
		c.RecentBars = 5
	}
	return c
}

// Engine builds snapshots for verified symbols, pacing and bounding each
// call to the quote collaborator.
type Engine struct {
	provider interfaces.QuoteProvider
	limiter  *ratelimit.Limiter
	timeout  time.Duration
	cfg      Config
}

func NewEngine(provider interfaces.QuoteProvider, limiter *ratelimit.Limiter, timeout time.Duration, cfg Config) *Engine {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Engine{provider: provider, limiter: limiter, timeout: timeout, cfg: cfg.withDefaults()}
}

// Snapshot fetches the symbol's history and computes its indicators.
// Collaborator failure surfaces as an error for this symbol only.
func (e *Engine) Snapshot(ctx context.Context, symbol string) (*types.TechnicalSnapshot, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	quote, err := e.provider.History(callCtx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", symbol, err)
	}
	if quote == nil || len(quote.Bars) == 0 {
		return nil, fmt.Errorf("no price history for %s", symbol)
	}

	snap := Compute(symbol, quote, e.cfg)
	return snap, nil
}

// Compute derives the full indicator set from a quote. Windows longer than
// the available series leave the corresponding field nil.
func Compute(symbol string, quote *types.Quote, cfg Config) *types.TechnicalSnapshot {
	cfg = cfg.withDefaults()

	closes := make([]float64, len(quote.Bars))
	volumes := make([]float64, len(quote.Bars))
	for i, b := range quote.Bars {
		closes[i] = b.Close
		volumes[i] = b.Volume
	}

	price := quote.RegularMarketPrice
	if price == 0 && len(closes) > 0 {
		price = closes[len(closes)-1]
	}

	snap := &types.TechnicalSnapshot{
		Symbol:       symbol,
		CurrentPrice: price,
		MarketCap:    quote.MarketCap,
		PERatio:      quote.PERatio,
		Sector:       quote.Sector,
		Industry:     quote.Industry,
		High52W:      quote.High52W,
		Low52W:       quote.Low52W,
	}

	// 30-day return; shorter series fall back to the first bar.
	if len(closes) > 0 {
		start := closes[0]
		if len(closes) >= 30 {
			start = closes[len(closes)-30]
		}
		if start != 0 {
			snap.PriceChange30D = (price - start) / start * 100
		}
	}

	snap.SMA20 = opt(ta.SMA(closes, cfg.SMAShort))
	snap.SMA50 = opt(ta.SMA(closes, cfg.SMALong))
	if snap.SMA20 != nil && *snap.SMA20 != 0 {
		d := (price - *snap.SMA20) / *snap.SMA20 * 100
		snap.DistanceFromSMA20 = &d
	}

	if _, up, low := ta.Bollinger(closes, cfg.BBWindow, cfg.BBStdDev); !math.IsNaN(up) {
		pos := ta.BandPosition(price, up, low)
		snap.BBUpper, snap.BBLower, snap.BBPosition = &up, &low, &pos
		snap.AtLowerBand = price < low*1.02
		snap.AtUpperBand = price > up*0.98
	}

	if rsi := ta.RSI(closes, cfg.RSIPeriod); !math.IsNaN(rsi) {
		snap.RSI = &rsi
		snap.Oversold = rsi < 30
		snap.Overbought = rsi > 70
	}

	if len(volumes) >= cfg.RecentBars {
		avg := ta.Mean(volumes)
		if avg != 0 {
			recent := ta.Mean(volumes[len(volumes)-cfg.RecentBars:])
			ratio := (recent - avg) / avg * 100
			snap.VolumeRatioPct = &ratio
			snap.AvgVolume = &avg
		}
	}

	if vol := ta.SampleStdDev(ta.PctChanges(closes)); !math.IsNaN(vol) {
		v := vol * 100
		snap.VolatilityPct = &v
	}

	// 52-week range position is undefined when bounds are missing or equal.
	if quote.High52W != nil && quote.Low52W != nil && *quote.High52W != *quote.Low52W {
		pos := (price - *quote.Low52W) / (*quote.High52W - *quote.Low52W) * 100
		snap.RangePosition52 = &pos
	}

	return snap
}

func opt(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
