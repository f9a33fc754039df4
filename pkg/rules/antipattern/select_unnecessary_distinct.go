package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*SelectUnnecessaryDistinctAdvisor)(nil)
	_ advisor.Describer = (*SelectUnnecessaryDistinctAdvisor)(nil)

	unnecessaryDistinctPattern = regexp.MustCompile(`(?i)SELECT\s+DISTINCT\s+\w*id\w*`)
	unnecessaryDistinctIssue   = types.Issue{
		Type:        "Unnecessary DISTINCT",
		Description: "DISTINCT on already-unique column",
		Fix:         "Remove DISTINCT for unique columns",
		Impact:      "Adds unnecessary sorting overhead",
		Severity:    types.SeverityLow,
	}
)

// SelectUnnecessaryDistinctAdvisor is the advisor checking for DISTINCT over identifier columns.
type SelectUnnecessaryDistinctAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*SelectUnnecessaryDistinctAdvisor) Issue() types.Issue { return unnecessaryDistinctIssue }

// Check checks for SELECT DISTINCT on a column whose name contains "id".
func (*SelectUnnecessaryDistinctAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !unnecessaryDistinctPattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return unnecessaryDistinctIssue.Finding(checkCtx.Original)
}
