package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereOrPreventsIndexAdvisor)(nil)
	_ advisor.Describer = (*WhereOrPreventsIndexAdvisor)(nil)

	orPreventsIndexPattern = regexp.MustCompile(`(?i)WHERE.*\w+\s*=.*\sOR\s+\w+\s*=`)
	orPreventsIndexIssue   = types.Issue{
		Type:        "OR Prevents Index",
		Description: "OR across different columns prevents index usage",
		Fix:         "Use UNION or redesign query logic",
		Impact:      "Forces full table scan",
		Severity:    types.SeverityMedium,
	}
)

// WhereOrPreventsIndexAdvisor is the advisor checking for OR between equality predicates.
type WhereOrPreventsIndexAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereOrPreventsIndexAdvisor) Issue() types.Issue { return orPreventsIndexIssue }

// Check checks for WHERE a = x OR b = y.
func (*WhereOrPreventsIndexAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !orPreventsIndexPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return orPreventsIndexIssue.Finding(checkCtx.Original)
}
