package antipattern

import (
	"regexp"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/types"
)

var (
	_ advisor.Advisor   = (*StatementMissingWhereAdvisor)(nil)
	_ advisor.Describer = (*StatementMissingWhereAdvisor)(nil)

	missingWherePattern = regexp.MustCompile(`(?i)^(UPDATE|DELETE)(\s+FROM)?\s+\w+(\s+SET)?`)
	missingWhereIssue   = types.Issue{
		Type:        "Missing WHERE in UPDATE/DELETE",
		Description: "UPDATE/DELETE without WHERE affects entire table",
		Fix:         "Add WHERE clause or use TRUNCATE if intentional",
		Impact:      "Can delete/update entire table accidentally",
		Severity:    types.SeverityCritical,
	}
)

// StatementMissingWhereAdvisor is the advisor checking for unfiltered UPDATE and DELETE statements.
type StatementMissingWhereAdvisor struct{}

// Issue returns the metadata attached to findings of this check.
func (*StatementMissingWhereAdvisor) Issue() types.Issue { return missingWhereIssue }

// Check checks for UPDATE or DELETE statements without a WHERE keyword.
func (*StatementMissingWhereAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if !missingWherePattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	if wherePattern.MatchString(checkCtx.Normalized) {
		return nil
	}
	return missingWhereIssue.Finding(checkCtx.Original)
}
