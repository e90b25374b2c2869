package usecase

import (
	"fmt"
	"strings"

	"TickerGate/internal/domain/models"
)

// NormalizationError reports canonical keys that could not be reconciled
// against the source table's columns.
type NormalizationError struct {
	Missing []string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// canonicalKey lowercases a column name and strips whitespace, underscores
// and punctuation so "To Grade", "to_grade" and "To-Grade" all collide.
func canonicalKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize converts a tabular provider result into flat records with the
// schema's canonical key set. The leading column always becomes the schema's
// date key; the rest are matched by normalized name. Extra columns are
// dropped, missing-value sentinels become explicit nulls, and row order is
// preserved. An empty table yields an empty slice, not an error.
func Normalize(table models.Table, schema models.Schema) ([]models.Record, error) {
	if table.Empty() {
		return []models.Record{}, nil
	}

	// column index -> canonical output key
	mapped := make(map[int]string, len(schema.Required))
	seen := make(map[string]bool, len(schema.Required))

	byKey := make(map[string]string, len(schema.Required))
	for _, k := range schema.Required {
		byKey[canonicalKey(k)] = k
	}

	for i, col := range table.Columns {
		if i == 0 {
			mapped[i] = schema.DateKey
			seen[schema.DateKey] = true
			continue
		}
		if k, ok := byKey[canonicalKey(col)]; ok && !seen[k] {
			mapped[i] = k
			seen[k] = true
		}
	}

	var missing []string
	for _, k := range schema.Required {
		if !seen[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, &NormalizationError{Missing: missing}
	}

	out := make([]models.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec := make(models.Record, len(schema.Required))
		for i, key := range mapped {
			var v any
			if i < len(row) {
				v = row[i]
			}
			if models.IsMissing(v) {
				rec[key] = nil
			} else {
				rec[key] = v
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
