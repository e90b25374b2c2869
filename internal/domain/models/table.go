package models

import "math"

// Record is a flat, JSON-ready row with a canonical key set.
type Record map[string]any

// Table is an ordered tabular result from the upstream provider: named
// columns and one row per event. The leading column carries the event
// date regardless of its source name.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Empty reports whether the table carries no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Schema names the canonical keys a normalized record must contain.
// DateKey is the target name of the leading column.
type Schema struct {
	DateKey  string
	Required []string
}

// RecommendationSchema is the canonical shape of analyst rating-change rows.
var RecommendationSchema = Schema{
	DateKey:  "date",
	Required: []string{"date", "firm", "to_grade", "from_grade"},
}

// HistorySchema is the canonical shape of daily OHLCV rows.
var HistorySchema = Schema{
	DateKey:  "date",
	Required: []string{"date", "open", "high", "low", "close", "volume"},
}

// IsMissing reports whether a cell holds the provider's missing-value
// sentinel. NaN floats come from sparse upstream frames.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return true
	}
	return false
}
