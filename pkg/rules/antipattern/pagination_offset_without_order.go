package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*PaginationOffsetWithoutOrderAdvisor)(nil)
	_ advisor.Describer = (*PaginationOffsetWithoutOrderAdvisor)(nil)

	offsetPattern           = regexp.MustCompile(`(?i)OFFSET\s+\d+`)
	orderByPattern          = regexp.MustCompile(`(?i)ORDER\s+BY`)
	offsetWithoutOrderIssue = types.Issue{
		Type:        "OFFSET without ORDER BY",
		Description: "OFFSET without ORDER BY returns random results",
		Fix:         "Add ORDER BY for deterministic results",
		Impact:      "Different results each execution",
		Severity:    types.SeverityHigh,
	}
)

// PaginationOffsetWithoutOrderAdvisor is the advisor checking for OFFSET over an unordered result.
type PaginationOffsetWithoutOrderAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*PaginationOffsetWithoutOrderAdvisor) Issue() types.Issue { return offsetWithoutOrderIssue }

// Check checks for an OFFSET n with no ORDER BY anywhere after it.
func (*PaginationOffsetWithoutOrderAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !anyMatchNotFollowedBy(offsetPattern, orderByPattern, checkCtx.Normalized) {
		return nil
	}
	return offsetWithoutOrderIssue.Finding(checkCtx.Original)
}
