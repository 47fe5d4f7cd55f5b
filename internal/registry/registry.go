package registry

import (
	"fmt"
	"strconv"

	"github.com/investor-registry/internal/merge"
	"github.com/investor-registry/internal/table"
)

// Registry output layout.
var Columns = []string{
	"Fund Name", "Investor ID", "Investor Name", "Transaction Date",
	"Unit Change", "Unit Price", "Transaction Type",
}

// ColReviewFlag marks registry rows that could not be linked to a merged
// investor and need manual review.
const ColReviewFlag = "Review Flag"

// FlagUnresolved is the review flag for an unknown source row.
const FlagUnresolved = "UNRESOLVED"

// Resolver answers row→investor lookups for registry construction. A miss
// is an explicit signal, never a guessed identifier.
type Resolver struct {
	rowMap map[int]int
}

// NewResolver wraps a merge run's row→investor map.
func NewResolver(rowMap map[int]int) *Resolver {
	return &Resolver{rowMap: rowMap}
}

// ResolveInvestor returns the investor id for a standardized row index.
// ok is false when the row is unknown; callers must flag, not default.
func (r *Resolver) ResolveInvestor(rowID int) (int, bool) {
	id, ok := r.rowMap[rowID]
	return id, ok
}

// Build constructs the registry table from the merged investor dataset and
// an optional transactions table. Without transactions every investor gets
// one skeleton row, matching the initial migration where transaction data
// arrives later. Transaction rows reference standardized rows through a
// "Row ID" column; rows that cannot be resolved are kept and flagged for
// manual review rather than dropped or guessed.
func Build(merged *table.Table, transactions *table.Table, resolver *Resolver) (*table.Table, error) {
	out := table.New(append(append([]string(nil), Columns...), ColReviewFlag))

	names := investorNames(merged)

	if transactions == nil || transactions.Len() == 0 {
		for _, row := range merged.Rows {
			id := row.Get(merge.ColInvestorID)
			out.Append(table.Row{
				"Fund Name":        "",
				"Investor ID":      id,
				"Investor Name":    names[id],
				"Transaction Date": "",
				"Unit Change":      "",
				"Unit Price":       "",
				"Transaction Type": "",
				ColReviewFlag:      "",
			})
		}
		return out, nil
	}

	if !transactions.HasColumn("Row ID") {
		return nil, fmt.Errorf("transactions table missing Row ID column")
	}

	for _, tx := range transactions.Rows {
		row := table.Row{
			"Fund Name":        tx.Get("Fund Name"),
			"Investor ID":      "",
			"Investor Name":    "",
			"Transaction Date": tx.Get("Transaction Date"),
			"Unit Change":      tx.Get("Unit Change"),
			"Unit Price":       tx.Get("Unit Price"),
			"Transaction Type": tx.Get("Transaction Type"),
			ColReviewFlag:      "",
		}

		rowID, err := strconv.Atoi(tx.Get("Row ID"))
		if err != nil {
			row[ColReviewFlag] = FlagUnresolved
			out.Append(row)
			continue
		}

		if id, ok := resolver.ResolveInvestor(rowID); ok {
			investorID := strconv.Itoa(id)
			row["Investor ID"] = investorID
			row["Investor Name"] = names[investorID]
		} else {
			row[ColReviewFlag] = FlagUnresolved
		}
		out.Append(row)
	}

	return out, nil
}

// investorNames maps investor id to "First Last" from the merged dataset.
func investorNames(merged *table.Table) map[string]string {
	names := make(map[string]string, merged.Len())
	for _, row := range merged.Rows {
		first := row.Get("First Name")
		last := row.Get("Last Name")
		name := first
		if last != "" {
			if name != "" {
				name += " "
			}
			name += last
		}
		names[row.Get(merge.ColInvestorID)] = name
	}
	return names
}
