package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrNoSymbols is returned when a batch request carries no usable symbols.
// It is a request-shape problem, not a per-symbol one.
var ErrNoSymbols = errors.New("must provide at least one non-empty symbol")

// FetchFunc resolves one symbol to its payload.
type FetchFunc func(ctx context.Context, symbol string) (any, error)

// defaultBatchWorkers bounds the per-request fan-out toward the provider.
const defaultBatchWorkers = 4

// CleanSymbols trims entries, drops blanks and collapses duplicates while
// preserving first-occurrence order.
func CleanSymbols(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	seen := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// ResolveBatch fetches every symbol independently and collects the outcomes
// into one map keyed by symbol. A failed fetch becomes an {"error": msg}
// entry for that symbol only; siblings are unaffected. Symbols fan out over
// a bounded worker pool. The result always holds exactly one entry per
// distinct requested symbol, including when ctx is cancelled mid-flight.
func ResolveBatch(ctx context.Context, symbols []string, fetch FetchFunc) (map[string]any, error) {
	cleaned := CleanSymbols(symbols)
	if len(cleaned) == 0 {
		return nil, ErrNoSymbols
	}

	results := make(map[string]any, len(cleaned))
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, defaultBatchWorkers)
	for _, sym := range cleaned {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			var entry any
			if err := ctx.Err(); err != nil {
				entry = map[string]any{"error": err.Error()}
			} else if v, err := fetch(ctx, sym); err != nil {
				entry = map[string]any{"error": err.Error()}
			} else {
				entry = v
			}

			mu.Lock()
			results[sym] = entry
			mu.Unlock()
		}(sym)
	}
	wg.Wait()

	return results, nil
}
