package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestResolveBatch_PartialFailureIsolation(t *testing.T) {
	fetch := func(_ context.Context, sym string) (any, error) {
		if sym == "BADSYM" {
			return nil, errors.New("no data found, symbol may be delisted")
		}
		return map[string]any{"symbol": sym, "price": 123.45}, nil
	}

	results, err := ResolveBatch(context.Background(), []string{"AAPL", "BADSYM"}, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want one entry per symbol, got %+v", results)
	}
	ok, _ := results["AAPL"].(map[string]any)
	if ok["symbol"] != "AAPL" {
		t.Fatalf("successful entry should be the unwrapped value: %+v", results["AAPL"])
	}
	bad, _ := results["BADSYM"].(map[string]any)
	if bad["error"] != "no data found, symbol may be delisted" {
		t.Fatalf("failed entry should carry the error message: %+v", results["BADSYM"])
	}
}

func TestResolveBatch_EmptyOrWhitespaceSymbols(t *testing.T) {
	called := false
	fetch := func(context.Context, string) (any, error) {
		called = true
		return nil, nil
	}

	for _, symbols := range [][]string{nil, {}, {"", "  ", "\t"}} {
		_, err := ResolveBatch(context.Background(), symbols, fetch)
		if !errors.Is(err, ErrNoSymbols) {
			t.Fatalf("symbols %q: want ErrNoSymbols, got %v", symbols, err)
		}
	}
	if called {
		t.Fatalf("fetch must not run for an invalid request")
	}
}

func TestResolveBatch_TrimsAndDeduplicates(t *testing.T) {
	var mu sync.Mutex
	calls := map[string]int{}
	fetch := func(_ context.Context, sym string) (any, error) {
		mu.Lock()
		calls[sym]++
		mu.Unlock()
		return sym, nil
	}

	results, err := ResolveBatch(context.Background(), []string{" AAPL ", "AAPL", "INFY.NS", ""}, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 entries, got %+v", results)
	}
	if calls["AAPL"] != 1 || calls["INFY.NS"] != 1 {
		t.Fatalf("duplicate symbols must fetch once: %+v", calls)
	}
	if results["AAPL"] != "AAPL" {
		t.Fatalf("trimmed symbol should key the result: %+v", results)
	}
}

func TestResolveBatch_ManySymbolsAllAccountedFor(t *testing.T) {
	n := 37
	symbols := make([]string, 0, n)
	for i := 0; i < n; i++ {
		symbols = append(symbols, fmt.Sprintf("SYM%02d", i))
	}
	fetch := func(_ context.Context, sym string) (any, error) {
		if sym[len(sym)-1] == '3' {
			return nil, errors.New("boom")
		}
		return sym, nil
	}

	results, err := ResolveBatch(context.Background(), symbols, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != n {
		t.Fatalf("want %d entries, got %d", n, len(results))
	}
	for _, sym := range symbols {
		if _, ok := results[sym]; !ok {
			t.Fatalf("missing entry for %s", sym)
		}
	}
}

func TestResolveBatch_CancelledContextYieldsErrorEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetch := func(ctx context.Context, sym string) (any, error) {
		return nil, ctx.Err()
	}

	results, err := ResolveBatch(ctx, []string{"AAPL", "MSFT"}, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for sym, v := range results {
		entry, ok := v.(map[string]any)
		if !ok || entry["error"] == "" {
			t.Fatalf("%s: cancelled symbol must resolve to an error entry, got %+v", sym, v)
		}
	}
	if len(results) != 2 {
		t.Fatalf("cancelled symbols must not be omitted: %+v", results)
	}
}
