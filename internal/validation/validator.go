package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/investor-registry/internal/table"
)

// RowValidator checks standardized investor rows for data-quality issues
// before merge. Issues never block the pipeline; they feed the quality
// report so reviewers know which source rows are suspect.
type RowValidator struct {
	emailRe *regexp.Regexp
}

// Issue is one data-quality finding on a standardized row.
type Issue struct {
	RowID  int    `json:"row_id"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// NewRowValidator creates a validator with the migration's quality rules.
func NewRowValidator() *RowValidator {
	return &RowValidator{
		emailRe: regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
	}
}

// ValidateTable checks every row and returns all findings.
func (v *RowValidator) ValidateTable(t *table.Table) []Issue {
	var issues []Issue
	for i, row := range t.Rows {
		issues = append(issues, v.ValidateRow(i, row)...)
	}
	return issues
}

// ValidateRow checks one standardized row.
func (v *RowValidator) ValidateRow(rowID int, row table.Row) []Issue {
	var issues []Issue

	if email := row.Get("Email"); email != "" && !v.emailRe.MatchString(email) {
		issues = append(issues, Issue{rowID, "Email", email, "not a valid email address"})
	}

	if phone := row.Get("Phone Number"); phone != "" && len(phone) < 8 {
		issues = append(issues, Issue{rowID, "Phone Number", phone, "fewer than 8 digits"})
	}

	if dob := row.Get("Date of Birth"); dob != "" {
		issues = append(issues, v.validateDOB(rowID, dob)...)
	}

	for _, col := range []string{"PIR %", "WHT %"} {
		if pct := row.Get(col); pct != "" {
			issues = append(issues, v.validatePercent(rowID, col, pct)...)
		}
	}

	return issues
}

// validateDOB flags unparseable or implausible birth dates. Standardization
// already emits ISO or blank, so anything else means dirty upstream data.
func (v *RowValidator) validateDOB(rowID int, dob string) []Issue {
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return []Issue{{rowID, "Date of Birth", dob, "not an ISO date"}}
	}
	if parsed.After(time.Now()) {
		return []Issue{{rowID, "Date of Birth", dob, "date is in the future"}}
	}
	if parsed.Year() < 1900 {
		return []Issue{{rowID, "Date of Birth", dob, "date is implausibly old"}}
	}
	return nil
}

// validatePercent flags percentages outside 0-100.
func (v *RowValidator) validatePercent(rowID int, col, pct string) []Issue {
	val, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
	if err != nil {
		return []Issue{{rowID, col, pct, "not a percentage"}}
	}
	if val < 0 || val > 100 {
		return []Issue{{rowID, col, pct, fmt.Sprintf("outside 0-100 range: %.2f", val)}}
	}
	return nil
}

// Report renders findings as a table for the quality report artifact.
func Report(issues []Issue) *table.Table {
	out := table.New([]string{"Row ID", "Column", "Value", "Reason"})
	for _, issue := range issues {
		out.Append(table.Row{
			"Row ID": strconv.Itoa(issue.RowID),
			"Column": issue.Column,
			"Value":  issue.Value,
			"Reason": issue.Reason,
		})
	}
	return out
}
