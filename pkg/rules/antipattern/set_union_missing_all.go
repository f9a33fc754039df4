package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*SetUnionMissingAllAdvisor)(nil)
	_ advisor.Describer = (*SetUnionMissingAllAdvisor)(nil)

	unionPattern         = regexp.MustCompile(`(?i)UNION`)
	allFollowPattern     = regexp.MustCompile(`(?i)^\s+ALL\b`)
	unionMissingAllIssue = types.Issue{
		Type:        "UNION Missing ALL",
		Description: "UNION performs unnecessary deduplication",
		Fix:         "Use UNION ALL if duplicates are acceptable",
		Impact:      "Adds expensive DISTINCT operation",
		Severity:    types.SeverityMedium,
	}
)

// SetUnionMissingAllAdvisor is the advisor checking for deduplicating UNION.
type SetUnionMissingAllAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*SetUnionMissingAllAdvisor) Issue() types.Issue { return unionMissingAllIssue }

// Check checks for a UNION that is not immediately followed by ALL.
func (*SetUnionMissingAllAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !anyMatchNotFollowedBy(unionPattern, allFollowPattern, checkCtx.Normalized) {
		return nil
	}
	return unionMissingAllIssue.Finding(checkCtx.Original)
}
