package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*WhereNonSargableAdvisor)(nil)
	_ advisor.Describer = (*WhereNonSargableAdvisor)(nil)

	nonSargableIssue = types.Issue{
		Type:        "Non-SARGable WHERE",
		Description: "WHERE clause prevents index usage",
		Fix:         "Use WHERE date >= ? AND date < ?",
		Impact:      "Full table scan instead of index seek",
		Severity:    types.SeverityHigh,
	}

	// Each pattern carries its own fix; the first matching pattern wins.
	nonSargablePatterns = []struct {
		pattern *regexp.Regexp
		fix     string
	}{
		{regexp.MustCompile(`(?i)WHERE\s+YEAR\s*\([^)]+\)\s*=`), "Use WHERE date >= ? AND date < ?"},
		{regexp.MustCompile(`(?i)WHERE\s+UPPER\s*\([^)]+\)\s*=`), "Create functional index or use case-insensitive collation"},
		{regexp.MustCompile(`(?i)WHERE\s+\w+\s*\+\s*\d+\s*=`), "Move calculation to right side"},
	}
)

// WhereNonSargableAdvisor is the advisor checking for WHERE predicates an index cannot seek on.
type WhereNonSargableAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereNonSargableAdvisor) Issue() types.Issue { return nonSargableIssue }

// Check checks for YEAR(col) =, UPPER(col) = and col + N = predicates.
func (*WhereNonSargableAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	for _, p := range nonSargablePatterns {
		if p.pattern.MatchString(checkCtx.Normalized) {
			issue := nonSargableIssue
			issue.Fix = p.fix
			return issue.Finding(checkCtx.Original)
		}
	}
	return nil
}
