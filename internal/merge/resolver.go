package merge

import (
	"github.com/investor-registry/internal/cluster"
	"github.com/investor-registry/internal/table"
)

// Record is one merged investor: the resolved value for every schema field
// plus the ascending list of standardized rows that contributed to it.
type Record struct {
	InvestorID int
	Fields     table.Row
	SourceRows []int
}

// Resolver collapses a cluster into a single record by majority vote.
type Resolver struct {
	columns []string
}

// NewResolver creates a resolver over the given schema columns.
func NewResolver(columns []string) *Resolver {
	return &Resolver{columns: append([]string(nil), columns...)}
}

// Resolve merges one cluster. The base record is the most complete member
// (fewest absent fields, ties to the lowest row index). Each field then
// takes the most frequent non-absent value across members; ties prefer the
// base's value, then the value contributed by the lowest row index. Fields
// absent across the whole cluster stay absent; placeholder substitution is
// schema enforcement's job, not the resolver's.
func (r *Resolver) Resolve(c cluster.Cluster, rows []table.Row) Record {
	base := r.selectBase(c, rows)

	fields := make(table.Row, len(r.columns))
	for _, col := range r.columns {
		fields[col] = r.voteField(col, c, rows, base)
	}

	return Record{
		Fields:     fields,
		SourceRows: append([]int(nil), c.Members...),
	}
}

// selectBase returns the row index of the cluster's most complete member.
// Members are ascending, so a strict > comparison breaks completeness ties
// towards the lowest row index.
func (r *Resolver) selectBase(c cluster.Cluster, rows []table.Row) int {
	base := c.Members[0]
	bestPresent := -1
	for _, m := range c.Members {
		present := 0
		for _, col := range r.columns {
			if !rows[m].IsBlank(col) {
				present++
			}
		}
		if present > bestPresent {
			bestPresent = present
			base = m
		}
	}
	return base
}

// voteField picks the winning value for one field across cluster members.
func (r *Resolver) voteField(col string, c cluster.Cluster, rows []table.Row, base int) string {
	counts := make(map[string]int)
	firstSource := make(map[string]int)
	for _, m := range c.Members {
		v := rows[m].Get(col)
		if v == "" {
			continue
		}
		counts[v]++
		if _, ok := firstSource[v]; !ok {
			firstSource[v] = m
		}
	}
	if len(counts) == 0 {
		return ""
	}

	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}

	baseValue := rows[base].Get(col)
	if baseValue != "" && counts[baseValue] == best {
		return baseValue
	}

	winner := ""
	winnerSource := -1
	for v, n := range counts {
		if n != best {
			continue
		}
		if winnerSource == -1 || firstSource[v] < winnerSource {
			winner = v
			winnerSource = firstSource[v]
		}
	}
	return winner
}

// BaseRow exposes base selection for the identifier assigner and tests.
func (r *Resolver) BaseRow(c cluster.Cluster, rows []table.Row) int {
	return r.selectBase(c, rows)
}
