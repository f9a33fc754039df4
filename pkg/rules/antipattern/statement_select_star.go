package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*StatementSelectStarAdvisor)(nil)
	_ advisor.Describer = (*StatementSelectStarAdvisor)(nil)

	selectStarPattern = regexp.MustCompile(`(?i)SELECT\s+\*`)
	selectStarIssue   = types.Issue{
		Type:        "SELECT * Usage",
		Description: "Query retrieves all columns unnecessarily",
		Fix:         "Specify only needed columns",
		Impact:      "50-90% less data transfer, enables covering indexes",
		Severity:    types.SeverityMedium,
	}
)

// StatementSelectStarAdvisor is the advisor checking for projections of every column.
type StatementSelectStarAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*StatementSelectStarAdvisor) Issue() types.Issue { return selectStarIssue }

// Check checks for SELECT *.
func (*StatementSelectStarAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !selectStarPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return selectStarIssue.Finding(checkCtx.Original)
}
