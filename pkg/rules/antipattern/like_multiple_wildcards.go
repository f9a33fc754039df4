package antipattern

import (
	"fmt"
	"strings"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

const (
	// maxWildcards is the largest number of % characters that is still accepted.
	maxWildcards = 2
)

var (
	_ advisor.Advisor   = (*LikeMultipleWildcardsAdvisor)(nil)
	_ advisor.Describer = (*LikeMultipleWildcardsAdvisor)(nil)

	multipleWildcardsIssue = types.Issue{
		Type:        "Multiple Wildcards",
		Description: "Multiple wildcards cause exponential scanning",
		Fix:         "Use full-text search for complex patterns",
		Impact:      "Exponential performance degradation",
		Severity:    types.SeverityHigh,
	}
)

// LikeMultipleWildcardsAdvisor is the advisor checking for wildcard-heavy patterns.
type LikeMultipleWildcardsAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*LikeMultipleWildcardsAdvisor) Issue() types.Issue { return multipleWildcardsIssue }

// Check counts % characters across the whole query.
func (*LikeMultipleWildcardsAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	count := strings.Count(checkCtx.Normalized, "%")
	if count <= maxWildcards {
		return nil
	}
	issue := multipleWildcardsIssue
	issue.Description = fmt.Sprintf("%d wildcards cause exponential scanning", count)
	return issue.Finding(checkCtx.Original)
}
