package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*SelectSubqueryInSelectListAdvisor)(nil)
	_ advisor.Describer = (*SelectSubqueryInSelectListAdvisor)(nil)

	selectListSubqueryPattern = regexp.MustCompile(`(?i)SELECT.*,.*\(\s*SELECT`)
	selectListSubqueryIssue   = types.Issue{
		Type:        "Subquery in SELECT List",
		Description: "Subquery executes for every row",
		Fix:         "Convert to JOIN or pre-calculate",
		Impact:      "O(n) subquery executions",
		Severity:    types.SeverityHigh,
	}
)

// SelectSubqueryInSelectListAdvisor is the advisor checking for scalar subqueries in the projection.
type SelectSubqueryInSelectListAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*SelectSubqueryInSelectListAdvisor) Issue() types.Issue { return selectListSubqueryIssue }

// Check checks for a later SELECT-list item that is itself a subquery.
func (*SelectSubqueryInSelectListAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !selectListSubqueryPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return selectListSubqueryIssue.Finding(checkCtx.Original)
}
