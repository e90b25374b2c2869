package repository

import (
	"context"
	"time"

	"TickerGate/internal/domain/models"
)

// TickerProvider is the upstream market-data source for a single symbol.
// Quote returns the provider's attribute payload as-is; Recommendations and
// History return tabular results that still need normalization.
type TickerProvider interface {
	Quote(ctx context.Context, symbol string) (any, error)
	Recommendations(ctx context.Context, symbol string) (models.Table, error)
	History(ctx context.Context, symbol string, from, to time.Time) (models.Table, error)
}

type Metrics interface {
	RecordFetch(method, outcome string)
	RecordError(kind string)
	RecordUpstreamLatency(method string, seconds float64)
}
