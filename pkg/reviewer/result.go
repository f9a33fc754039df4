package reviewer

import (
	"fmt"
	"strings"

	"github.com/nsxbet/slowql/pkg/report"
	"github.com/nsxbet/slowql/pkg/types"
)

// ReviewResult contains the results of a SQL review operation.
type ReviewResult struct {
	// Findings contains all detected anti-patterns, grouped by statement in
	// submission order. Empty if no issues were found.
	Findings []*types.Finding

	// Statements is the number of statements analyzed.
	Statements int

	// Summary provides aggregate statistics about the findings.
	Summary Summary
}

// Summary provides aggregate statistics about review findings.
type Summary struct {
	Total    int
	Critical int
	High     int
	Medium   int
	Low      int

	// IssueTypes is the number of distinct issue names found.
	IssueTypes int
}

// HasSeverityAtLeast reports whether any finding is at least as severe as s.
//
// This is useful for CI/CD pipelines:
//
//	if result.HasSeverityAtLeast(types.SeverityHigh) {
//	    os.Exit(1)
//	}
func (r *ReviewResult) HasSeverityAtLeast(s types.Severity) bool {
	for _, f := range r.Findings {
		if f.Severity.AtLeast(s) {
			return true
		}
	}
	return false
}

// IsClean returns true if the review found no anti-patterns.
func (r *ReviewResult) IsClean() bool {
	return r.Summary.Total == 0
}

// String returns a human-readable summary of the review results.
//
// Example output:
//
//	Review Results: 5 issues in 3 statements (1 critical, 2 high, 2 medium, 0 low)
func (r *ReviewResult) String() string {
	return fmt.Sprintf(
		"Review Results: %d issues in %d statements (%d critical, %d high, %d medium, %d low)",
		r.Summary.Total,
		r.Statements,
		r.Summary.Critical,
		r.Summary.High,
		r.Summary.Medium,
		r.Summary.Low,
	)
}

// FilterBySeverity returns the findings with exactly the given severity.
func (r *ReviewResult) FilterBySeverity(s types.Severity) []*types.Finding {
	filtered := make([]*types.Finding, 0)
	for _, f := range r.Findings {
		if f.Severity == s {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// FilterByIssueType returns the findings of one issue, matched case-insensitively:
//
//	stars := result.FilterByIssueType("SELECT * Usage")
func (r *ReviewResult) FilterByIssueType(issueType string) []*types.Finding {
	filtered := make([]*types.Finding, 0)
	for _, f := range r.Findings {
		if strings.EqualFold(f.IssueType, issueType) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Rows returns the grouped report projection of the findings, most severe first.
func (r *ReviewResult) Rows() []report.Row {
	rows := report.Group(r.Findings)
	report.SortBySeverity(rows)
	return rows
}
