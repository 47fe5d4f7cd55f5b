package merge

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/investor-registry/internal/cluster"
	"github.com/investor-registry/internal/debug"
	"github.com/investor-registry/internal/match"
	"github.com/investor-registry/internal/table"
)

// ColInvestorID is the merged output column carrying the assigned id.
const ColInvestorID = "Account ID"

// Engine runs the full entity-resolution pass: derive comparison keys,
// block, union matching rows, resolve each cluster and assign identifiers.
// One engine value serves one run; it holds no cross-run state.
type Engine struct {
	matcher  *match.Matcher
	resolver *Resolver
	Debug    bool
}

// Result is everything one merge run produces.
type Result struct {
	Records  []Record
	RowMap   map[int]int
	Clusters []cluster.Cluster
}

// NewEngine creates an engine with the given match policy and schema columns.
func NewEngine(policy match.Policy, columns []string) *Engine {
	return &Engine{
		matcher:  match.NewMatcher(policy),
		resolver: NewResolver(columns),
	}
}

// Run merges the standardized table. Rows are indexed by position; the
// table is the run's private snapshot and is not mutated.
func (e *Engine) Run(std *table.Table) (*Result, error) {
	defer debug.Span(e.Debug, "merge")()

	n := std.Len()
	keys := make([]match.Key, n)
	for i, row := range std.Rows {
		keys[i] = match.KeyFor(row)
	}

	// Blocking: rows sharing a full combination of MinAgreements present
	// key fields necessarily satisfy the match rule, so rows in one block
	// union directly. Any pair that would match under the exact rule shares
	// at least one block, so recall is preserved.
	blocks := make(map[string][]int)
	for i, k := range keys {
		for _, bk := range e.matcher.BlockKeys(k) {
			blocks[bk] = append(blocks[bk], i)
		}
	}

	builder := cluster.NewBuilder(n)
	for _, rows := range blocks {
		head := rows[0]
		for _, j := range rows[1:] {
			builder.Link(head, j)
		}
	}

	clusters := builder.Clusters()
	if err := cluster.VerifyPartition(clusters, n); err != nil {
		return nil, fmt.Errorf("cluster partition violated: %w", err)
	}
	debug.Logf(e.Debug, "%d rows clustered into %d investors", n, len(clusters))

	records := make([]Record, 0, len(clusters))
	for _, c := range clusters {
		records = append(records, e.resolver.Resolve(c, std.Rows))
	}

	rowMap, err := AssignIdentifiers(records)
	if err != nil {
		return nil, err
	}

	return &Result{Records: records, RowMap: rowMap, Clusters: clusters}, nil
}

// Table renders the merged records as a table with the investor id first,
// followed by the schema columns in order.
func (r *Result) Table(columns []string) *table.Table {
	out := table.New(append([]string{ColInvestorID}, columns...))
	for _, rec := range r.Records {
		row := make(table.Row, len(columns)+1)
		row[ColInvestorID] = strconv.Itoa(rec.InvestorID)
		for _, c := range columns {
			row[c] = rec.Fields[c]
		}
		out.Append(row)
	}
	return out
}

// RowMapTable renders the row→investor map as a two-column table for the
// audit artifact; rows are ascending by standardized row index.
func (r *Result) RowMapTable() *table.Table {
	rowIDs := make([]int, 0, len(r.RowMap))
	for id := range r.RowMap {
		rowIDs = append(rowIDs, id)
	}
	sort.Ints(rowIDs)

	out := table.New([]string{"Row ID", "Account ID"})
	for _, id := range rowIDs {
		out.Append(table.Row{
			"Row ID":     strconv.Itoa(id),
			"Account ID": strconv.Itoa(r.RowMap[id]),
		})
	}
	return out
}
