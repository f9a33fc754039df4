package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*SubqueryNotInNullableAdvisor)(nil)
	_ advisor.Describer = (*SubqueryNotInNullableAdvisor)(nil)

	notInSubqueryPattern = regexp.MustCompile(`(?i)NOT\s+IN\s*\(\s*SELECT`)
	notInNullableIssue   = types.Issue{
		Type:        "NOT IN with NULLable",
		Description: "NOT IN with subquery fails if any NULL values",
		Fix:         "Use NOT EXISTS instead",
		Impact:      "Query returns no results if subquery contains NULL",
		Severity:    types.SeverityHigh,
	}
)

// SubqueryNotInNullableAdvisor is the advisor checking for NOT IN over a subquery.
type SubqueryNotInNullableAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*SubqueryNotInNullableAdvisor) Issue() types.Issue { return notInNullableIssue }

// Check checks for NOT IN (SELECT ...).
func (*SubqueryNotInNullableAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !notInSubqueryPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return notInNullableIssue.Finding(checkCtx.Original)
}
