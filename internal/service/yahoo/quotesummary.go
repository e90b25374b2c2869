package yahoo

import (
	"context"
	"fmt"
	"time"

	"TickerGate/internal/domain/models"
	xhttp "TickerGate/pkg/http"
)

// recommendationColumns mirror the provider's frame for rating changes.
var recommendationColumns = []string{"Date", "Firm", "To Grade", "From Grade", "Action"}

type gradeEvent struct {
	EpochGradeDate int64   `json:"epochGradeDate"`
	Firm           *string `json:"firm"`
	ToGrade        *string `json:"toGrade"`
	FromGrade      *string `json:"fromGrade"`
	Action         *string `json:"action"`
}

type quoteSummaryEnvelope struct {
	QuoteSummary struct {
		Result []struct {
			UpgradeDowngradeHistory struct {
				History []gradeEvent `json:"history"`
			} `json:"upgradeDowngradeHistory"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Recommendations fetches the analyst rating-change history for a symbol
// from the quoteSummary endpoint, in provider order.
func (c *Client) Recommendations(ctx context.Context, symbol string) (models.Table, error) {
	var env quoteSummaryEnvelope
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", c.quoteSummaryURL, symbol),
		Headers: map[string]string{
			"User-Agent": c.userAgent,
			"Accept":     "application/json",
		},
		QueryParams: map[string][]string{
			"modules": {"upgradeDowngradeHistory"},
		},
	}, &env)
	if err != nil {
		return models.Table{}, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, err)
	}
	if e := env.QuoteSummary.Error; e != nil {
		return models.Table{}, fmt.Errorf("yahoo quoteSummary %s: %s: %s", symbol, e.Code, e.Description)
	}

	table := models.Table{Columns: recommendationColumns}
	if len(env.QuoteSummary.Result) == 0 {
		// no upgradeDowngradeHistory for this symbol; empty history
		return table, nil
	}
	for _, ev := range env.QuoteSummary.Result[0].UpgradeDowngradeHistory.History {
		date := time.Unix(ev.EpochGradeDate, 0).UTC().Format("2006-01-02")
		table.Rows = append(table.Rows, []any{
			date,
			strOrNil(ev.Firm),
			strOrNil(ev.ToGrade),
			strOrNil(ev.FromGrade),
			strOrNil(ev.Action),
		})
	}
	return table, nil
}

// strOrNil keeps absent provider fields as explicit nils so normalization
// can emit JSON nulls instead of sentinel values.
func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
