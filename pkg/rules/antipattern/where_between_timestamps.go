package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereBetweenTimestampsAdvisor)(nil)
	_ advisor.Describer = (*WhereBetweenTimestampsAdvisor)(nil)

	// Only bare dates: a literal carrying a time component does not match.
	betweenDatesPattern = regexp.MustCompile(`(?i)BETWEEN\s+['"]\d{4}-\d{2}-\d{2}['"]\s+AND\s+['"]\d{4}-\d{2}-\d{2}['"]`)
	betweenDatesIssue   = types.Issue{
		Type:        "BETWEEN with Timestamps",
		Description: "BETWEEN with dates may miss end-of-day records",
		Fix:         "Use >= start AND < end+1 day",
		Impact:      "Misses records with time components",
		Severity:    types.SeverityMedium,
	}
)

// WhereBetweenTimestampsAdvisor is the advisor checking for BETWEEN over date-only literals.
type WhereBetweenTimestampsAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereBetweenTimestampsAdvisor) Issue() types.Issue { return betweenDatesIssue }

// Check checks for BETWEEN 'YYYY-MM-DD' AND 'YYYY-MM-DD'.
func (*WhereBetweenTimestampsAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !betweenDatesPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return betweenDatesIssue.Finding(checkCtx.Original)
}
