package usecase

import (
	"context"
	"fmt"
	"time"

	"TickerGate/internal/domain/models"
	domrepo "TickerGate/internal/domain/repository"
)

// TickerUseCase resolves per-symbol data requests against the upstream
// provider and normalizes tabular results before they cross the HTTP
// boundary.
type TickerUseCase struct {
	provider domrepo.TickerProvider
	metrics  domrepo.Metrics
}

func NewTickerUseCase(provider domrepo.TickerProvider, metrics domrepo.Metrics) *TickerUseCase {
	return &TickerUseCase{provider: provider, metrics: metrics}
}

// Quote returns the provider's attribute payload for one symbol, unchanged.
func (uc *TickerUseCase) Quote(ctx context.Context, symbol string) (any, error) {
	return uc.timed(ctx, "quote", symbol, func(ctx context.Context) (any, error) {
		return uc.provider.Quote(ctx, symbol)
	})
}

// Recommendations returns the normalized analyst rating-change history for
// one symbol, most recent ordering preserved from the provider.
func (uc *TickerUseCase) Recommendations(ctx context.Context, symbol string) ([]models.Record, error) {
	v, err := uc.timed(ctx, "recommendations", symbol, func(ctx context.Context) (any, error) {
		table, err := uc.provider.Recommendations(ctx, symbol)
		if err != nil {
			return nil, err
		}
		return Normalize(table, models.RecommendationSchema)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Record), nil
}

// History returns normalized daily OHLCV records for one symbol.
func (uc *TickerUseCase) History(ctx context.Context, symbol string, from, to time.Time) ([]models.Record, error) {
	v, err := uc.timed(ctx, "history", symbol, func(ctx context.Context) (any, error) {
		table, err := uc.provider.History(ctx, symbol, from, to)
		if err != nil {
			return nil, err
		}
		return Normalize(table, models.HistorySchema)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Record), nil
}

// QuoteBatch resolves quotes for many symbols with per-symbol error isolation.
func (uc *TickerUseCase) QuoteBatch(ctx context.Context, symbols []string) (map[string]any, error) {
	return ResolveBatch(ctx, symbols, func(ctx context.Context, sym string) (any, error) {
		return uc.Quote(ctx, sym)
	})
}

// RecommendationsBatch resolves recommendation histories for many symbols.
func (uc *TickerUseCase) RecommendationsBatch(ctx context.Context, symbols []string) (map[string]any, error) {
	return ResolveBatch(ctx, symbols, func(ctx context.Context, sym string) (any, error) {
		return uc.Recommendations(ctx, sym)
	})
}

// DataParams carries the generic /data dispatch inputs.
type DataParams struct {
	Method  string
	Symbols []string
	From    time.Time
	To      time.Time
}

// Data dispatches an enumerated method name over a symbol batch. Method
// names outside the capability table resolve to a per-symbol error entry,
// never to reflective lookup.
func (uc *TickerUseCase) Data(ctx context.Context, p DataParams) (map[string]any, error) {
	fetch, known := uc.accessor(p)
	if !known {
		fetch = func(ctx context.Context, sym string) (any, error) {
			return nil, fmt.Errorf("ticker has no method %q", p.Method)
		}
	}
	return ResolveBatch(ctx, p.Symbols, fetch)
}

// accessor is the capability table: every method name the generic route may
// dispatch, bound to a typed fetch.
func (uc *TickerUseCase) accessor(p DataParams) (FetchFunc, bool) {
	switch p.Method {
	case "info":
		return func(ctx context.Context, sym string) (any, error) {
			return uc.Quote(ctx, sym)
		}, true
	case "recommendations", "upgrades_downgrades":
		return func(ctx context.Context, sym string) (any, error) {
			return uc.Recommendations(ctx, sym)
		}, true
	case "history":
		return func(ctx context.Context, sym string) (any, error) {
			return uc.History(ctx, sym, p.From, p.To)
		}, true
	default:
		return nil, false
	}
}

func (uc *TickerUseCase) timed(ctx context.Context, method, symbol string, fn func(context.Context) (any, error)) (any, error) {
	start := time.Now()
	v, err := fn(ctx)
	if uc.metrics != nil {
		uc.metrics.RecordUpstreamLatency(method, time.Since(start).Seconds())
		if err != nil {
			uc.metrics.RecordFetch(method, "error")
		} else {
			uc.metrics.RecordFetch(method, "ok")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, symbol, err)
	}
	return v, nil
}
