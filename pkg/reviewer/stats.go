package reviewer

import (
	"context"
	"time"

	"github.com/nsxbet/slowql/pkg/report"
	"github.com/nsxbet/slowql/pkg/types"
)

// Stats are cumulative counts over every review a Reviewer has run.
type Stats struct {
	TotalIssues      int            `json:"total_issues_detected" yaml:"total_issues_detected"`
	UniqueIssueTypes int            `json:"unique_issue_types" yaml:"unique_issue_types"`
	MostCommonIssue  string         `json:"most_common_issue,omitempty" yaml:"most_common_issue,omitempty"`
	Breakdown        map[string]int `json:"issue_breakdown" yaml:"issue_breakdown"`
	Timestamp        time.Time      `json:"analysis_timestamp" yaml:"analysis_timestamp"`
}

func (r *Reviewer) record(findings []*types.Finding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range findings {
		r.stats[f.IssueType]++
	}
}

// Stats returns a snapshot of the cumulative statistics. Ties for the most common
// issue resolve to the alphabetically first name.
func (r *Reviewer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{
		UniqueIssueTypes: len(r.stats),
		Breakdown:        make(map[string]int, len(r.stats)),
		Timestamp:        time.Now(),
	}
	best := 0
	for issue, count := range r.stats {
		s.Breakdown[issue] = count
		s.TotalIssues += count
		if count > best || (count == best && issue < s.MostCommonIssue) {
			best = count
			s.MostCommonIssue = issue
		}
	}
	return s
}

// ResetStats clears the cumulative statistics.
func (r *Reviewer) ResetStats() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.stats)
}

var indexSuggestions = map[string]string{
	"Non-SARGable WHERE":         "Consider functional index on computed column",
	"Function on Indexed Column": "CREATE INDEX idx_name ON table(LOWER(column))",
	"Leading Wildcard":           "Consider full-text index",
	"OR Prevents Index":          "Create separate indexes for each condition",
}

// SuggestIndexes returns index advice for the index-related issues among rows,
// as a comment line followed by the advice, once per issue in row order.
func SuggestIndexes(rows []report.Row) []string {
	var suggestions []string
	seen := make(map[string]bool)
	for _, row := range rows {
		advice, ok := indexSuggestions[row.Issue]
		if !ok || seen[row.Issue] {
			continue
		}
		seen[row.Issue] = true
		suggestions = append(suggestions, "-- For "+row.Issue+" issues:", advice)
	}
	return suggestions
}

// Comparison describes how a rewritten query improves on the original.
type Comparison struct {
	OriginalIssues        int      `json:"original_issues" yaml:"original_issues"`
	OptimizedIssues       int      `json:"optimized_issues" yaml:"optimized_issues"`
	IssuesResolved        int      `json:"issues_resolved" yaml:"issues_resolved"`
	ImprovementPercentage float64  `json:"improvement_percentage" yaml:"improvement_percentage"`
	RemainingIssues       []string `json:"remaining_issues" yaml:"remaining_issues"`
}

// Compare reviews before and after and reports the difference in findings.
// IssuesResolved is negative when after has more findings than before. Compare
// does not add to the cumulative statistics.
func (r *Reviewer) Compare(ctx context.Context, before, after string, opts ...ReviewOption) (*Comparison, error) {
	original, err := r.review(ctx, before, opts)
	if err != nil {
		return nil, err
	}
	optimized, err := r.review(ctx, after, opts)
	if err != nil {
		return nil, err
	}

	c := &Comparison{
		OriginalIssues:  original.Summary.Total,
		OptimizedIssues: optimized.Summary.Total,
		IssuesResolved:  original.Summary.Total - optimized.Summary.Total,
		RemainingIssues: make([]string, 0, len(optimized.Findings)),
	}
	if c.OriginalIssues > 0 {
		c.ImprovementPercentage = float64(c.IssuesResolved) / float64(c.OriginalIssues) * 100
	}
	for _, f := range optimized.Findings {
		c.RemainingIssues = append(c.RemainingIssues, f.IssueType)
	}
	return c, nil
}
