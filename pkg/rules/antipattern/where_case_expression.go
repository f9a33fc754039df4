package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereCaseExpressionAdvisor)(nil)
	_ advisor.Describer = (*WhereCaseExpressionAdvisor)(nil)

	whereCasePattern = regexp.MustCompile(`(?i)WHERE.*CASE\s+WHEN`)
	whereCaseIssue   = types.Issue{
		Type:        "CASE in WHERE Clause",
		Description: "Complex CASE in WHERE prevents optimization",
		Fix:         "Simplify logic or move to application",
		Impact:      "Prevents index usage and predicate pushdown",
		Severity:    types.SeverityMedium,
	}
)

// WhereCaseExpressionAdvisor is the advisor checking for CASE expressions in predicates.
type WhereCaseExpressionAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereCaseExpressionAdvisor) Issue() types.Issue { return whereCaseIssue }

// Check checks for CASE WHEN after WHERE.
func (*WhereCaseExpressionAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !whereCasePattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return whereCaseIssue.Finding(checkCtx.Original)
}
