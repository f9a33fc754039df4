package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*LikeWithoutWildcardAdvisor)(nil)
	_ advisor.Describer = (*LikeWithoutWildcardAdvisor)(nil)

	likeLiteralPattern       = regexp.MustCompile(`(?i)LIKE\s+(?:'[^'%_]+'|"[^"%_]+")`)
	likeWithoutWildcardIssue = types.Issue{
		Type:        "LIKE without Wildcards",
		Description: "LIKE without wildcards should be =",
		Fix:         "Use = for exact matches",
		Impact:      "Slightly slower than equality check",
		Severity:    types.SeverityLow,
	}
)

// LikeWithoutWildcardAdvisor is the advisor checking for LIKE used as equality.
type LikeWithoutWildcardAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*LikeWithoutWildcardAdvisor) Issue() types.Issue { return likeWithoutWildcardIssue }

// Check checks for LIKE with a quoted literal containing neither % nor _.
func (*LikeWithoutWildcardAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !likeLiteralPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return likeWithoutWildcardIssue.Finding(checkCtx.Original)
}
