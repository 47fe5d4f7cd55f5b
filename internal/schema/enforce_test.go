package schema

import (
	"testing"

	"github.com/investor-registry/internal/table"
)

func TestEnforceFillsRequiredBlanks(t *testing.T) {
	tab := table.New([]string{"First Name", "Suburb"})
	tab.Append(table.Row{"First Name": "", "Suburb": ""})
	tab.Append(table.Row{"First Name": "Ann", "Suburb": "  "})

	Enforce(tab, []string{"First Name"}, PlaceholderInvestor)

	if got := tab.Rows[0].Get("First Name"); got != PlaceholderInvestor {
		t.Errorf("required blank = %q, want placeholder", got)
	}
	if got := tab.Rows[1].Get("First Name"); got != "Ann" {
		t.Errorf("present value = %q, want untouched", got)
	}
	// Optional columns stay blank.
	if got := tab.Rows[0].Get("Suburb"); got != "" {
		t.Errorf("optional blank = %q, want untouched", got)
	}
}

func TestEnforceAddsMissingRequiredColumns(t *testing.T) {
	tab := table.New([]string{"First Name"})
	tab.Append(table.Row{"First Name": "Ann"})

	Enforce(tab, []string{"Tax Identification Number"}, PlaceholderRegistry)

	if !tab.HasColumn("Tax Identification Number") {
		t.Fatal("missing required column was not added")
	}
	if got := tab.Rows[0].Get("Tax Identification Number"); got != PlaceholderRegistry {
		t.Errorf("added column value = %q, want placeholder", got)
	}
}

func TestEnforceWhitespaceCountsAsAbsent(t *testing.T) {
	tab := table.New([]string{"Email"})
	tab.Append(table.Row{"Email": "   "})

	Enforce(tab, []string{"Email"}, PlaceholderInvestor)

	if got := tab.Rows[0].Get("Email"); got != PlaceholderInvestor {
		t.Errorf("whitespace value = %q, want placeholder", got)
	}
}
