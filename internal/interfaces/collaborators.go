package interfaces

import (
	"context"
	"time"

	"social-momentum-scanner/internal/types"
)

// DocumentCollector supplies a batch of documents for one named source
// group. Implementations are registered at startup; the pipeline never
// discovers them dynamically.
type DocumentCollector interface {
	// Name identifies the collector in the registry and in logs.
	Name() string

	// ValidateCredentials verifies the collector is usable before a scan.
	ValidateCredentials(ctx context.Context) error

	// Collect returns up to limit documents. A batch contains no
	// duplicates; cross-batch deduplication is not this layer's job.
	Collect(ctx context.Context, limit int) ([]types.Document, error)
}

// QuoteProvider is the external market-data collaborator. Failures are
// returned as errors; callers degrade them to "no data" per symbol.
type QuoteProvider interface {
	// Price returns the current regular-market price for a symbol.
	Price(ctx context.Context, symbol string) (float64, error)

	// History returns the daily price history plus scalar quote fields.
	History(ctx context.Context, symbol string) (*types.Quote, error)
}

// ResultStore persists finalized scan results. Save is idempotent per
// (symbol, scan time) and reports how many records were actually written.
type ResultStore interface {
	Save(ctx context.Context, scanTime time.Time, results []types.CombinedResult) (int, error)
}
