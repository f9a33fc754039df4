package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*LikeLeadingWildcardAdvisor)(nil)
	_ advisor.Describer = (*LikeLeadingWildcardAdvisor)(nil)

	leadingWildcardPattern = regexp.MustCompile(`(?i)LIKE\s+['"]%`)
	leadingWildcardIssue   = types.Issue{
		Type:        "Leading Wildcard",
		Description: "Leading % prevents index usage",
		Fix:         "Use full-text search or redesign query",
		Impact:      "Forces full table scan",
		Severity:    types.SeverityHigh,
	}
)

// LikeLeadingWildcardAdvisor is the advisor checking for LIKE patterns starting with %.
type LikeLeadingWildcardAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*LikeLeadingWildcardAdvisor) Issue() types.Issue { return leadingWildcardIssue }

// Check checks for LIKE '%...'.
func (*LikeLeadingWildcardAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !leadingWildcardPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return leadingWildcardIssue.Finding(checkCtx.Original)
}
