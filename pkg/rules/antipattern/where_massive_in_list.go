package antipattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

const (
	// maxInListItems is the largest IN list that is still accepted.
	maxInListItems = 50
)

var (
	_ advisor.Advisor   = (*WhereMassiveInListAdvisor)(nil)
	_ advisor.Describer = (*WhereMassiveInListAdvisor)(nil)

	inListPattern      = regexp.MustCompile(`(?i)\bIN\s*\(([^)]+)\)`)
	massiveInListIssue = types.Issue{
		Type:        "Massive IN List",
		Description: "IN clause with too many values",
		Fix:         "Use temp table JOIN instead",
		Impact:      "Query parser overhead, plan cache bloat",
		Severity:    types.SeverityHigh,
	}
)

// WhereMassiveInListAdvisor is the advisor checking for oversized IN lists.
type WhereMassiveInListAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*WhereMassiveInListAdvisor) Issue() types.Issue { return massiveInListIssue }

// Check checks every IN (...) list and reports the first one above the limit.
func (*WhereMassiveInListAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	for _, match := range inListPattern.FindAllStringSubmatch(checkCtx.Normalized, -1) {
		items := strings.Count(match[1], ",") + 1
		if items <= maxInListItems {
			continue
		}
		issue := massiveInListIssue
		issue.Description = fmt.Sprintf("IN clause with %d values", items)
		return issue.Finding(checkCtx.Original)
	}
	return nil
}
