package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*AggregateHavingWithoutAggregateAdvisor)(nil)
	_ advisor.Describer = (*AggregateHavingWithoutAggregateAdvisor)(nil)

	havingPattern          = regexp.MustCompile(`(?i)HAVING`)
	aggregateFollowPattern = regexp.MustCompile(`(?i)^\s+(COUNT|SUM|AVG|MAX|MIN)`)
	wherePattern           = regexp.MustCompile(`(?i)\bWHERE\b`)
	havingWithoutAggIssue  = types.Issue{
		Type:        "HAVING Instead of WHERE",
		Description: "HAVING filters after grouping",
		Fix:         "Use WHERE for row filtering before GROUP BY",
		Impact:      "Processes all rows before filtering",
		Severity:    types.SeverityMedium,
	}
)

// AggregateHavingWithoutAggregateAdvisor is the advisor checking for HAVING used as a row filter.
type AggregateHavingWithoutAggregateAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*AggregateHavingWithoutAggregateAdvisor) Issue() types.Issue { return havingWithoutAggIssue }

// Check checks for HAVING not followed by an aggregate function in a query with no WHERE.
func (*AggregateHavingWithoutAggregateAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	text := checkCtx.Normalized
	if wherePattern.MatchString(text) {
		return nil
	}
	if !anyMatchNotFollowedBy(havingPattern, aggregateFollowPattern, text) {
		return nil
	}
	return havingWithoutAggIssue.Finding(checkCtx.Original)
}
