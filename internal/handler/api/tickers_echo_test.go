package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"TickerGate/internal/domain/models"
	"TickerGate/internal/usecase"
	xlogger "TickerGate/pkg/logger"

	"github.com/labstack/echo/v4"
)

const testKey = "secret-key"

type stubProvider struct {
	fetches int64
}

func (s *stubProvider) Quote(_ context.Context, symbol string) (any, error) {
	atomic.AddInt64(&s.fetches, 1)
	if symbol == "BADSYM" {
		return nil, errors.New("no data found, symbol may be delisted")
	}
	return map[string]any{"symbol": symbol, "regularMarketPrice": 185.64}, nil
}

func (s *stubProvider) Recommendations(_ context.Context, symbol string) (models.Table, error) {
	atomic.AddInt64(&s.fetches, 1)
	if symbol == "BADSYM" {
		return models.Table{}, errors.New("no data found, symbol may be delisted")
	}
	return models.Table{
		Columns: []string{"Date", "Firm", "To Grade", "From Grade", "Action"},
		Rows:    [][]any{{"2024-01-01", "Morgan Stanley", "Buy", "Hold", "up"}},
	}, nil
}

func (s *stubProvider) History(_ context.Context, symbol string, _, _ time.Time) (models.Table, error) {
	atomic.AddInt64(&s.fetches, 1)
	return models.Table{
		Columns: []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"},
		Rows:    [][]any{{"2024-01-02", 187.15, 188.44, 183.89, 185.64, 185.01, 82488700}},
	}, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *stubProvider) {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	provider := &stubProvider{}
	uc := usecase.NewTickerUseCase(provider, nil)
	h := NewTickerHandler(l, uc, testKey)

	e := echo.New()
	h.RegisterRoutes(e)
	return e, provider
}

func do(e *echo.Echo, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if key != "" {
		req.Header.Set("X-API-KEY", key)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func TestAuth_MissingOrWrongKeyIs403EverywhereAndNoFetch(t *testing.T) {
	e, provider := newTestServer(t)

	for _, path := range []string{"/", "/quote/AAPL", "/quotes?symbols=AAPL", "/recommendation/AAPL", "/recommendations?symbols=AAPL", "/data/info?symbol=AAPL"} {
		for _, key := range []string{"", "wrong-key"} {
			rr := do(e, path, key)
			if rr.Code != http.StatusForbidden {
				t.Fatalf("%s key=%q: want 403, got %d", path, key, rr.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["detail"] != "Invalid or missing API Key" {
				t.Fatalf("unexpected body: %+v", body)
			}
		}
	}
	if provider.fetches != 0 {
		t.Fatalf("no upstream fetch may happen on auth failure, got %d", provider.fetches)
	}
}

func TestRoot_Liveness(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] == "" {
		t.Fatalf("liveness payload missing status: %+v", body)
	}
}

func TestQuote_SingleSymbolPassthrough(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/quote/AAPL", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["symbol"] != "AAPL" {
		t.Fatalf("single route must return the bare payload: %+v", body)
	}
}

func TestQuote_UpstreamFailureIs500WithDetail(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/quote/BADSYM", testKey)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["detail"] == "" {
		t.Fatalf("500 must carry the failure message: %+v", body)
	}
}

func TestQuotes_BatchPartialFailureIs200(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/quotes?symbols=AAPL,BADSYM", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("batch responses are 200 on valid shape, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("want one entry per symbol: %+v", body)
	}
	if body["AAPL"]["symbol"] != "AAPL" {
		t.Fatalf("AAPL entry should be the payload: %+v", body["AAPL"])
	}
	if body["BADSYM"]["error"] == "" {
		t.Fatalf("BADSYM entry should carry the error: %+v", body["BADSYM"])
	}
}

func TestQuotes_MissingOrBlankSymbolsIs400BeforeFetch(t *testing.T) {
	e, provider := newTestServer(t)

	for _, path := range []string{"/quotes", "/quotes?symbols=", "/quotes?symbols=+%2C+"} {
		rr := do(e, path, testKey)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d: %s", path, rr.Code, rr.Body.String())
		}
	}
	if provider.fetches != 0 {
		t.Fatalf("no fetch may happen for an invalid request, got %d", provider.fetches)
	}
}

func TestRecommendation_SingleSymbolNormalized(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/recommendation/AAPL", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var recs []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record: %+v", recs)
	}
	rec := recs[0]
	if rec["date"] != "2024-01-01" || rec["firm"] != "Morgan Stanley" || rec["to_grade"] != "Buy" || rec["from_grade"] != "Hold" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRecommendations_Batch(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/recommendations?symbols=AAPL,BADSYM", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var recs []map[string]any
	if err := json.Unmarshal(body["AAPL"], &recs); err != nil || len(recs) != 1 {
		t.Fatalf("AAPL should be a record list: %s", body["AAPL"])
	}
	var errEntry map[string]string
	if err := json.Unmarshal(body["BADSYM"], &errEntry); err != nil || errEntry["error"] == "" {
		t.Fatalf("BADSYM should be an error entry: %s", body["BADSYM"])
	}
}

func TestData_DispatchAndUnknownMethod(t *testing.T) {
	e, _ := newTestServer(t)

	rr := do(e, "/data/info?symbol=AAPL", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["AAPL"]["symbol"] != "AAPL" {
		t.Fatalf("unexpected info result: %+v", body)
	}

	rr = do(e, "/data/balance_sheet?symbol=AAPL", testKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("unknown method stays a per-symbol error, got %d", rr.Code)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["AAPL"]["error"] == "" {
		t.Fatalf("want error entry for unknown method: %+v", body)
	}

	rr = do(e, "/data/info", testKey)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing symbol params must be 400, got %d", rr.Code)
	}
}
