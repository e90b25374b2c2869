package yahoo

import (
	"context"
	"fmt"
	"time"

	"TickerGate/internal/domain/models"
	drepo "TickerGate/internal/domain/repository"
	xhttp "TickerGate/pkg/http"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// historyColumns are the provider-style column names of a daily bar frame.
// "Adj Close" is intentionally kept; normalization drops it.
var historyColumns = []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"}

// Client implements a TickerProvider backed by Yahoo Finance: quotes and
// charts through finance-go, recommendation history through the raw
// quoteSummary endpoint.
type Client struct {
	http            *xhttp.Client
	quoteSummaryURL string
	userAgent       string
}

// New creates a new Yahoo TickerProvider.
func New(quoteSummaryURL, userAgent string, timeout time.Duration) drepo.TickerProvider {
	return &Client{
		http:            xhttp.NewClient(xhttp.WithTimeout(timeout)),
		quoteSummaryURL: quoteSummaryURL,
		userAgent:       userAgent,
	}
}

// Quote fetches the full quote payload for a symbol. The payload passes
// through to the response untouched.
func (c *Client) Quote(_ context.Context, symbol string) (any, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("yahoo quote %s: no data", symbol)
	}
	return q, nil
}

// History fetches daily bars for [from, to] as a tabular result.
func (c *Client) History(_ context.Context, symbol string, from, to time.Time) (models.Table, error) {
	p := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	if !from.IsZero() {
		p.Start = datetime.New(&from)
	}
	if !to.IsZero() {
		p.End = datetime.New(&to)
	}

	table := models.Table{Columns: historyColumns}
	iter := chart.Get(p)
	for iter.Next() {
		b := iter.Bar()
		open, _ := b.Open.Float64()
		high, _ := b.High.Float64()
		low, _ := b.Low.Float64()
		cls, _ := b.Close.Float64()
		adj, _ := b.AdjClose.Float64()
		date := time.Unix(int64(b.Timestamp), 0).UTC().Format("2006-01-02")
		table.Rows = append(table.Rows, []any{date, open, high, low, cls, adj, b.Volume})
	}
	if err := iter.Err(); err != nil {
		return models.Table{}, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	return table, nil
}
