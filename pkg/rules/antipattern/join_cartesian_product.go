package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*JoinCartesianProductAdvisor)(nil)
	_ advisor.Describer = (*JoinCartesianProductAdvisor)(nil)

	commaJoinPattern      = regexp.MustCompile(`(?i)FROM\s+\w+\s*,\s*\w+`)
	joinConditionPattern  = regexp.MustCompile(`(?i)WHERE|JOIN`)
	cartesianProductIssue = types.Issue{
		Type:        "Cartesian Product",
		Description: "Multiple tables without JOIN condition",
		Fix:         "Add proper JOIN conditions",
		Impact:      "Result set explodes exponentially",
		Severity:    types.SeverityCritical,
	}
)

// JoinCartesianProductAdvisor is the advisor checking for comma joins with no join condition.
type JoinCartesianProductAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*JoinCartesianProductAdvisor) Issue() types.Issue { return cartesianProductIssue }

// Check checks for FROM a, b without any WHERE or JOIN.
func (*JoinCartesianProductAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !commaJoinPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	if joinConditionPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return cartesianProductIssue.Finding(checkCtx.Original)
}
