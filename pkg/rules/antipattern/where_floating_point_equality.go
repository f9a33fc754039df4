package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereFloatingPointEqualityAdvisor)(nil)
	_ advisor.Describer = (*WhereFloatingPointEqualityAdvisor)(nil)

	floatEqualityPattern = regexp.MustCompile(`(?i)(price|amount|total|cost|value)\s*=\s*\d+\.\d+`)
	floatEqualityIssue   = types.Issue{
		Type:        "Floating Point Equality",
		Description: "Exact equality on floating point values",
		Fix:         "Use range comparison or DECIMAL type",
		Impact:      "May miss values due to precision issues",
		Severity:    types.SeverityMedium,
	}
)

// WhereFloatingPointEqualityAdvisor is the advisor checking for exact equality on monetary-like columns.
type WhereFloatingPointEqualityAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereFloatingPointEqualityAdvisor) Issue() types.Issue { return floatEqualityIssue }

// Check checks for price, amount, total, cost or value compared with = to a decimal literal.
func (*WhereFloatingPointEqualityAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !floatEqualityPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return floatEqualityIssue.Finding(checkCtx.Original)
}
