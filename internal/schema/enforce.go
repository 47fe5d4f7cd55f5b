package schema

import (
	"strings"

	"github.com/investor-registry/internal/table"
)

// Placeholder values substituted for required fields still absent after
// merge and after registry construction. They make missing data visible to
// manual review rather than inferred.
const (
	PlaceholderInvestor = "NOT AVAILABLE"
	PlaceholderRegistry = "NO DATA AVAILABLE"
)

// Enforce fills required-but-absent values with the placeholder. Required
// columns missing from the table entirely are added, placeholder-filled.
// The table is modified in place and returned for chaining.
func Enforce(t *table.Table, required []string, placeholder string) *table.Table {
	t.EnsureColumns(required)
	for _, col := range required {
		for _, row := range t.Rows {
			if strings.TrimSpace(row[col]) == "" {
				row[col] = placeholder
			}
		}
	}
	return t
}
