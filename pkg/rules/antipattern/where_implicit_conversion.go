package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereImplicitConversionAdvisor)(nil)
	_ advisor.Describer = (*WhereImplicitConversionAdvisor)(nil)

	implicitConversionPattern = regexp.MustCompile(`(?i)WHERE\s+\w*(name|email|code|status)\w*\s*=\s*\d+`)
	implicitConversionIssue   = types.Issue{
		Type:        "Implicit Type Conversion",
		Description: "Comparing string column to number forces conversion",
		Fix:         "Use proper quotes for string values",
		Impact:      "Prevents index usage, causes full table scan",
		Severity:    types.SeverityHigh,
	}
)

// WhereImplicitConversionAdvisor is the advisor checking for string-like columns compared to numbers.
type WhereImplicitConversionAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereImplicitConversionAdvisor) Issue() types.Issue { return implicitConversionIssue }

// Check checks for name, email, code or status columns compared with a bare numeric literal.
func (*WhereImplicitConversionAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !implicitConversionPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return implicitConversionIssue.Finding(checkCtx.Original)
}
