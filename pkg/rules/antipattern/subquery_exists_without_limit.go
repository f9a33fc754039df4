package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*SubqueryExistsWithoutLimitAdvisor)(nil)
	_ advisor.Describer = (*SubqueryExistsWithoutLimitAdvisor)(nil)

	existsSubqueryPattern   = regexp.MustCompile(`(?i)EXISTS\s*(\()\s*SELECT\s`)
	limitKeywordPattern     = regexp.MustCompile(`(?i)\bLIMIT\b`)
	existsWithoutLimitIssue = types.Issue{
		Type:        "EXISTS without LIMIT",
		Description: "EXISTS checks all rows unnecessarily",
		Fix:         "Add LIMIT 1 to EXISTS subquery",
		Impact:      "Continues scanning after first match",
		Severity:    types.SeverityLow,
	}
)

// SubqueryExistsWithoutLimitAdvisor is the advisor checking for EXISTS subqueries without LIMIT.
type SubqueryExistsWithoutLimitAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*SubqueryExistsWithoutLimitAdvisor) Issue() types.Issue { return existsWithoutLimitIssue }

// Check checks each EXISTS (SELECT ...) body for a LIMIT clause.
func (*SubqueryExistsWithoutLimitAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	text := checkCtx.Normalized
	for _, loc := range existsSubqueryPattern.FindAllStringSubmatchIndex(text, -1) {
		// loc[2] is the offset of the captured opening parenthesis.
		if !limitKeywordPattern.MatchString(enclosedBody(text, loc[2])) {
			return existsWithoutLimitIssue.Finding(checkCtx.Original)
		}
	}
	return nil
}
