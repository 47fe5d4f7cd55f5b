package merge

import (
	"reflect"
	"testing"

	"github.com/investor-registry/internal/cluster"
	"github.com/investor-registry/internal/table"
)

var testColumns = []string{"First Name", "Email", "Phone Number"}

func TestSelectBaseMostComplete(t *testing.T) {
	rows := []table.Row{
		{"First Name": "Ann", "Email": "", "Phone Number": ""},        // 2 absent
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": ""}, // 1 absent
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": "5551234"}, // 0 absent
	}
	r := NewResolver(testColumns)

	// Base is the most complete row regardless of member ordering.
	for _, members := range [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}} {
		c := cluster.Cluster{Members: append([]int(nil), members...)}
		if got := r.BaseRow(c, rows); got != 2 {
			t.Errorf("BaseRow(members=%v) = %d, want 2", members, got)
		}
	}
}

func TestSelectBaseTieBreaksLowestRow(t *testing.T) {
	rows := []table.Row{
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": ""},
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": ""},
	}
	r := NewResolver(testColumns)
	c := cluster.Cluster{Members: []int{0, 1}}

	if got := r.BaseRow(c, rows); got != 0 {
		t.Errorf("BaseRow() = %d, want 0 on completeness tie", got)
	}
}

func TestResolveMajorityVote(t *testing.T) {
	rows := []table.Row{
		{"First Name": "Anne", "Email": "a@x.com", "Phone Number": "5551234"},
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": "5551234"},
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": ""},
	}
	r := NewResolver(testColumns)
	rec := r.Resolve(cluster.Cluster{Members: []int{0, 1, 2}}, rows)

	if got := rec.Fields["First Name"]; got != "Ann" {
		t.Errorf("First Name = %q, want majority value %q", got, "Ann")
	}
	if got := rec.Fields["Phone Number"]; got != "5551234" {
		t.Errorf("Phone Number = %q, want %q", got, "5551234")
	}
	if !reflect.DeepEqual(rec.SourceRows, []int{0, 1, 2}) {
		t.Errorf("SourceRows = %v, want ascending [0 1 2]", rec.SourceRows)
	}
}

func TestResolveTiePrefersBaseValue(t *testing.T) {
	// Rows 0 and 1 disagree on First Name with one vote each; row 0 is the
	// base (more complete), so its value wins the tie.
	rows := []table.Row{
		{"First Name": "Anne", "Email": "a@x.com", "Phone Number": "5551234"},
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": ""},
	}
	r := NewResolver(testColumns)
	rec := r.Resolve(cluster.Cluster{Members: []int{0, 1}}, rows)

	if got := rec.Fields["First Name"]; got != "Anne" {
		t.Errorf("First Name = %q, want base value %q", got, "Anne")
	}
}

func TestResolveTieFallsBackToLowestRow(t *testing.T) {
	// The base is absent for Phone Number; the tied values fall back to the
	// lowest contributing row.
	rows := []table.Row{
		{"First Name": "Ann", "Email": "a@x.com", "Phone Number": ""},
		{"First Name": "Ann", "Email": "", "Phone Number": "5551111"},
		{"First Name": "Ann", "Email": "", "Phone Number": "5552222"},
	}
	r := NewResolver(testColumns)
	c := cluster.Cluster{Members: []int{0, 1, 2}}

	if base := r.BaseRow(c, rows); base != 0 {
		t.Fatalf("BaseRow() = %d, want 0", base)
	}

	rec := r.Resolve(c, rows)
	if got := rec.Fields["Phone Number"]; got != "5551111" {
		t.Errorf("Phone Number = %q, want lowest-row value %q", got, "5551111")
	}
}

func TestResolveFieldAbsentEverywhereStaysAbsent(t *testing.T) {
	rows := []table.Row{
		{"First Name": "Ann", "Email": "", "Phone Number": ""},
		{"First Name": "Ann", "Email": "", "Phone Number": ""},
	}
	r := NewResolver(testColumns)
	rec := r.Resolve(cluster.Cluster{Members: []int{0, 1}}, rows)

	if got := rec.Fields["Email"]; got != "" {
		t.Errorf("Email = %q, want absent; placeholders are schema enforcement's job", got)
	}
}

func TestResolveSingleton(t *testing.T) {
	rows := []table.Row{
		{"First Name": "Solo", "Email": "s@x.com", "Phone Number": "5550000"},
	}
	r := NewResolver(testColumns)
	rec := r.Resolve(cluster.Cluster{Members: []int{0}}, rows)

	for _, col := range testColumns {
		if rec.Fields[col] != rows[0][col] {
			t.Errorf("%s = %q, want %q", col, rec.Fields[col], rows[0][col])
		}
	}
}

func TestAssignIdentifiers(t *testing.T) {
	records := []Record{
		{SourceRows: []int{3}},
		{SourceRows: []int{0, 2}},
		{SourceRows: []int{1}},
	}

	rowMap, err := AssignIdentifiers(records)
	if err != nil {
		t.Fatalf("AssignIdentifiers() error = %v", err)
	}

	wantMap := map[int]int{0: 1, 2: 1, 1: 2, 3: 3}
	if !reflect.DeepEqual(rowMap, wantMap) {
		t.Errorf("rowMap = %v, want %v", rowMap, wantMap)
	}
	for i, rec := range records {
		if rec.InvestorID != i+1 {
			t.Errorf("records[%d].InvestorID = %d, want %d", i, rec.InvestorID, i+1)
		}
	}
}

func TestAssignIdentifiersRejectsOverlap(t *testing.T) {
	records := []Record{
		{SourceRows: []int{0, 1}},
		{SourceRows: []int{1}},
	}
	if _, err := AssignIdentifiers(records); err == nil {
		t.Error("AssignIdentifiers() = nil error, want overlap rejection")
	}
}
