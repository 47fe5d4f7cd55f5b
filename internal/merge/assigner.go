package merge

import (
	"fmt"
	"sort"
)

// AssignIdentifiers gives every resolved record a stable investor id and
// builds the total row→investor map consumed by registry construction.
// Records are numbered 1..n in order of their lowest source row, so
// re-running the pipeline on unchanged input reproduces identical ids.
// The records slice must carry every cluster exactly once; its order is
// normalized in place.
func AssignIdentifiers(records []Record) (map[int]int, error) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].SourceRows[0] < records[j].SourceRows[0]
	})

	rowMap := make(map[int]int)
	for i := range records {
		records[i].InvestorID = i + 1
		for _, rowID := range records[i].SourceRows {
			if prev, dup := rowMap[rowID]; dup {
				return nil, fmt.Errorf("row %d assigned to investors %d and %d", rowID, prev, records[i].InvestorID)
			}
			rowMap[rowID] = records[i].InvestorID
		}
	}
	return rowMap, nil
}
