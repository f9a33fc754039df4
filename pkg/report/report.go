// Package report turns findings into the grouped tabular projection and renders it.
//
// Grouping keys on (issue type, fix, impact): every distinct key becomes one Row
// whose Count is the number of findings with that key, in first-seen order.
package report

import (
	"slices"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

// exampleQueryRunes is the maximum length of Row.Query.
const exampleQueryRunes = 60

// Row is one aggregated issue.
type Row struct {
	Issue       string         `json:"issue" yaml:"issue"`
	Query       string         `json:"query" yaml:"query"`
	Description string         `json:"description" yaml:"description"`
	Fix         string         `json:"fix" yaml:"fix"`
	Impact      string         `json:"impact" yaml:"impact"`
	Severity    types.Severity `json:"severity" yaml:"severity"`
	LineNumber  *int           `json:"line_number" yaml:"line_number"`
	Count       int            `json:"count" yaml:"count"`
}

type groupKey struct {
	issue, fix, impact string
}

// Group aggregates findings by (issue type, fix, impact) in first-seen order.
//
// Description, severity and line number come from the first finding of each
// group. Query is that finding's query truncated to 60 characters.
func Group(findings []*types.Finding) []Row {
	var rows []Row
	index := make(map[groupKey]int)
	for _, f := range findings {
		if f == nil {
			continue
		}
		key := groupKey{issue: f.IssueType, fix: f.Fix, impact: f.Impact}
		if i, ok := index[key]; ok {
			rows[i].Count++
			continue
		}
		index[key] = len(rows)
		rows = append(rows, Row{
			Issue:       f.IssueType,
			Query:       advisor.TruncateStatement(f.Query, exampleQueryRunes),
			Description: f.Description,
			Fix:         f.Fix,
			Impact:      f.Impact,
			Severity:    f.Severity,
			LineNumber:  f.LineNumber,
			Count:       1,
		})
	}
	return rows
}

// SortBySeverity orders rows CRITICAL first and LOW last, keeping the relative
// order of rows with the same severity.
func SortBySeverity(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})
}

// Total returns the number of findings represented by rows.
func Total(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return total
}

// CountBySeverity returns the number of findings per severity.
func CountBySeverity(rows []Row) map[types.Severity]int {
	counts := make(map[types.Severity]int, len(types.Severities))
	for _, r := range rows {
		counts[r.Severity] += r.Count
	}
	return counts
}
