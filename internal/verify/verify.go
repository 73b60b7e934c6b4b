// Package verify confirms candidate symbols resolve to real tradable
// instruments via the quote collaborator.
package verify

import (
	"context"
	"time"

	"social-momentum-scanner/internal/interfaces"
	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/ratelimit"
	"social-momentum-scanner/internal/types"
)

// Verifier performs rate-limited, timeout-bounded symbol lookups. Lookup
// failures never propagate; a failing symbol is simply not valid.
type Verifier struct {
	provider interfaces.QuoteProvider
	limiter  *ratelimit.Limiter
	timeout  time.Duration
}

func New(provider interfaces.QuoteProvider, limiter *ratelimit.Limiter, timeout time.Duration) *Verifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Verifier{provider: provider, limiter: limiter, timeout: timeout}
}

// Verify reports whether the collaborator knows a nonzero regular-market
// price for the symbol. Any error, including rate-limit cancellation,
// counts as not valid.
func (v *Verifier) Verify(ctx context.Context, symbol string) bool {
	if v.limiter != nil {
		if err := v.limiter.Wait(ctx); err != nil {
			return false
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	price, err := v.provider.Price(callCtx, symbol)
	if err != nil {
		logger.Debug(ctx, "Symbol failed verification", "symbol", symbol, "error", err)
		return false
	}
	return price != 0
}

// TopK scans the ranked stats in order and returns the first k whose
// symbols verify, stopping early once k are found. Invalid symbols are
// skipped, never aborting the scan.
func (v *Verifier) TopK(ctx context.Context, stats []types.AggregateStat, k int) []types.AggregateStat {
	if k <= 0 {
		return nil
	}

	verified := make([]types.AggregateStat, 0, k)
	checked := 0
	for _, st := range stats {
		if len(verified) >= k {
			break
		}
		if ctx.Err() != nil {
			break
		}
		checked++
		if v.Verify(ctx, st.Symbol) {
			verified = append(verified, st)
		} else {
			logger.Info(ctx, "Excluding unverified symbol", "symbol", st.Symbol)
		}
	}

	logger.Info(ctx, "Ticker verification finished",
		"verified", len(verified), "checked", checked, "target", k)
	return verified
}
