package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereNPlusOneAdvisor)(nil)
	_ advisor.Describer = (*WhereNPlusOneAdvisor)(nil)

	// Placeholders in the ?, $1 and :name styles.
	nPlusOnePattern = regexp.MustCompile(`(?i)SELECT.*FROM.*WHERE\s+\w+_id\s*=\s*(\?|\$\d+|:\w+)`)
	nPlusOneIssue   = types.Issue{
		Type:        "Potential N+1 Pattern",
		Description: "Query pattern suggests N+1 issue when in loop",
		Fix:         "Use JOIN or WHERE IN batch query",
		Impact:      "Network roundtrips multiply by N",
		Severity:    types.SeverityHigh,
	}
)

// WhereNPlusOneAdvisor is the advisor checking for single-row lookups by foreign key.
type WhereNPlusOneAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereNPlusOneAdvisor) Issue() types.Issue { return nPlusOneIssue }

// Check checks for WHERE <x>_id = <placeholder>.
func (*WhereNPlusOneAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !nPlusOnePattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return nPlusOneIssue.Finding(checkCtx.Original)
}
