package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*AggregateCountForExistenceAdvisor)(nil)
	_ advisor.Describer = (*AggregateCountForExistenceAdvisor)(nil)

	countForExistencePattern = regexp.MustCompile(`(?i)COUNT\s*\(\s*\*\s*\)\s*>\s*0`)
	countForExistenceIssue   = types.Issue{
		Type:        "COUNT(*) for Existence",
		Description: "Using COUNT(*) to check if rows exist",
		Fix:         "Use EXISTS instead",
		Impact:      "Counts all rows instead of stopping at first",
		Severity:    types.SeverityMedium,
	}
)

// AggregateCountForExistenceAdvisor is the advisor checking for COUNT(*) > 0 existence tests.
type AggregateCountForExistenceAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*AggregateCountForExistenceAdvisor) Issue() types.Issue { return countForExistenceIssue }

// Check checks for COUNT(*) > 0.
func (*AggregateCountForExistenceAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !countForExistencePattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return countForExistenceIssue.Finding(checkCtx.Original)
}
