// Package quoteobs wraps a QuoteProvider with tracing and logging.
package quoteobs

import (
	"context"

	"social-momentum-scanner/internal/interfaces"
	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/trace"
	"social-momentum-scanner/internal/types"
)

type observableQuoteProvider struct {
	provider interfaces.QuoteProvider
}

var _ interfaces.QuoteProvider = (*observableQuoteProvider)(nil)

func Wrap(provider interfaces.QuoteProvider) interfaces.QuoteProvider {
	return &observableQuoteProvider{provider: provider}
}

func (o *observableQuoteProvider) Price(ctx context.Context, symbol string) (float64, error) {
	ctx, span := trace.StartSpan(ctx, "quote.Price")
	defer span.End()

	price, err := o.provider.Price(ctx, symbol)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Quote price lookup failed", err, "symbol", symbol)
		return 0, err
	}

	logger.DebugSkip(ctx, 1, "Quote price lookup", "symbol", symbol, "price", price)
	return price, nil
}

func (o *observableQuoteProvider) History(ctx context.Context, symbol string) (*types.Quote, error) {
	ctx, span := trace.StartSpan(ctx, "quote.History")
	defer span.End()

	q, err := o.provider.History(ctx, symbol)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Quote history fetch failed", err, "symbol", symbol)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Quote history fetched",
		"symbol", symbol, "bars", len(q.Bars))
	return q, nil
}
