package antipattern

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

const (
	// largeOffsetThreshold is the largest OFFSET that is still accepted.
	largeOffsetThreshold = 1000
)

var (
	_ advisor.Advisor   = (*PaginationLargeOffsetAdvisor)(nil)
	_ advisor.Describer = (*PaginationLargeOffsetAdvisor)(nil)

	offsetValuePattern = regexp.MustCompile(`(?i)OFFSET\s+(\d+)`)
	largeOffsetIssue   = types.Issue{
		Type:        "Large OFFSET Pagination",
		Description: "OFFSET reads and discards skipped rows",
		Fix:         "Use cursor-based pagination with WHERE id > last_id",
		Impact:      "Performance degrades linearly with offset",
		Severity:    types.SeverityHigh,
	}
)

// PaginationLargeOffsetAdvisor is the advisor checking for deep OFFSET pagination.
type PaginationLargeOffsetAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*PaginationLargeOffsetAdvisor) Issue() types.Issue { return largeOffsetIssue }

// Check checks the first OFFSET value against the threshold.
func (*PaginationLargeOffsetAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	match := offsetValuePattern.FindStringSubmatch(checkCtx.Normalized)
	if match == nil {
		return nil
	}
	digits := match[1]
	// Values that overflow int64 are beyond any threshold.
	if offset, err := strconv.ParseInt(digits, 10, 64); err == nil && offset <= largeOffsetThreshold {
		return nil
	}
	issue := largeOffsetIssue
	issue.Description = fmt.Sprintf("OFFSET %s reads and discards %s rows", digits, digits)
	return issue.Finding(checkCtx.Original)
}
