package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereFunctionOnIndexedColumnAdvisor)(nil)
	_ advisor.Describer = (*WhereFunctionOnIndexedColumnAdvisor)(nil)

	functionOnIndexedColumnPattern = regexp.MustCompile(`(?i)WHERE.*(LOWER|UPPER|TRIM|SUBSTRING|DATE|YEAR|MONTH)\s*\(\s*(id|email|user_id|created_at)\b`)
	functionOnIndexedColumnIssue   = types.Issue{
		Type:        "Function on Indexed Column",
		Description: "Function on column prevents index usage",
		Fix:         "Create functional index or rewrite condition",
		Impact:      "Full table scan instead of index seek",
		Severity:    types.SeverityHigh,
	}
)

// WhereFunctionOnIndexedColumnAdvisor is the advisor checking for functions wrapping commonly indexed columns.
type WhereFunctionOnIndexedColumnAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereFunctionOnIndexedColumnAdvisor) Issue() types.Issue { return functionOnIndexedColumnIssue }

// Check checks for LOWER, UPPER, TRIM, SUBSTRING, DATE, YEAR or MONTH applied to
// id, email, user_id or created_at inside WHERE.
func (*WhereFunctionOnIndexedColumnAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !functionOnIndexedColumnPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return functionOnIndexedColumnIssue.Finding(checkCtx.Original)
}
