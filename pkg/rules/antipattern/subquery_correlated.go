package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*SubqueryCorrelatedAdvisor)(nil)
	_ advisor.Describer = (*SubqueryCorrelatedAdvisor)(nil)

	correlatedSubqueryPattern = regexp.MustCompile(`(?i)SELECT.*\(SELECT.*FROM.*WHERE.*=.*\w+\.\w+`)
	correlatedSubqueryIssue   = types.Issue{
		Type:        "Correlated Subquery",
		Description: "Subquery executes once per row",
		Fix:         "Rewrite as JOIN or pre-calculate values",
		Impact:      "O(n²) performance degradation",
		Severity:    types.SeverityHigh,
	}
)

// SubqueryCorrelatedAdvisor is the advisor checking for subqueries that reference the outer query.
type SubqueryCorrelatedAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*SubqueryCorrelatedAdvisor) Issue() types.Issue { return correlatedSubqueryIssue }

// Check checks for a nested SELECT whose WHERE compares against a qualified column.
func (*SubqueryCorrelatedAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !correlatedSubqueryPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return correlatedSubqueryIssue.Finding(checkCtx.Original)
}
