package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*OrderByOrdinalAdvisor)(nil)
	_ advisor.Describer = (*OrderByOrdinalAdvisor)(nil)

	orderByOrdinalPattern = regexp.MustCompile(`(?i)ORDER\s+BY\s+\d+`)
	orderByOrdinalIssue   = types.Issue{
		Type:        "ORDER BY Ordinal",
		Description: "ORDER BY position number is fragile",
		Fix:         "Use column names explicitly",
		Impact:      "Breaks when SELECT list changes",
		Severity:    types.SeverityLow,
	}
)

// OrderByOrdinalAdvisor is the advisor checking for ORDER BY by column position.
type OrderByOrdinalAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*OrderByOrdinalAdvisor) Issue() types.Issue { return orderByOrdinalIssue }

// Check checks for ORDER BY followed by an integer.
func (*OrderByOrdinalAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !orderByOrdinalPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return orderByOrdinalIssue.Finding(checkCtx.Original)
}
