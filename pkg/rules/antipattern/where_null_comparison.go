package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereNullComparisonAdvisor)(nil)
	_ advisor.Describer = (*WhereNullComparisonAdvisor)(nil)

	nullComparisonPattern = regexp.MustCompile(`(?i)(=|!=|<>)\s*NULL\b`)
	nullComparisonIssue   = types.Issue{
		Type:        "NULL Comparison Error",
		Description: "Using = or != with NULL always returns UNKNOWN",
		Fix:         "Use IS NULL or IS NOT NULL",
		Impact:      "Condition never matches any rows",
		Severity:    types.SeverityCritical,
	}
)

// WhereNullComparisonAdvisor is the advisor checking for equality comparisons against NULL.
type WhereNullComparisonAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereNullComparisonAdvisor) Issue() types.Issue { return nullComparisonIssue }

// Check checks for = NULL, != NULL and <> NULL anywhere in the query.
func (*WhereNullComparisonAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !nullComparisonPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return nullComparisonIssue.Finding(checkCtx.Original)
}
