package antipattern

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/sqltext"
	"github.com/nsxbet/slowql/pkg/types"
)

// TestCase is a single statement from a testdata YAML file.
type TestCase struct {
	Statement string       `yaml:"statement"`
	Want      *WantFinding `yaml:"want,omitempty"`
}

// WantFinding holds the expected finding; empty description or fix are not compared.
type WantFinding struct {
	IssueType   string         `yaml:"issueType"`
	Severity    types.Severity `yaml:"severity"`
	Description string         `yaml:"description,omitempty"`
	Fix         string         `yaml:"fix,omitempty"`
}

var expectedOrder = []advisor.Type{
	advisor.StatementSelectStar,
	advisor.StatementMissingWhere,
	advisor.WhereNonSargable,
	advisor.WhereImplicitConversion,
	advisor.JoinCartesianProduct,
	advisor.WhereNPlusOne,
	advisor.SubqueryCorrelated,
	advisor.WhereOrPreventsIndex,
	advisor.PaginationLargeOffset,
	advisor.SelectUnnecessaryDistinct,
	advisor.WhereMassiveInList,
	advisor.LikeLeadingWildcard,
	advisor.AggregateCountForExistence,
	advisor.SubqueryNotInNullable,
	advisor.SubqueryExistsWithoutLimit,
	advisor.WhereFloatingPointEquality,
	advisor.WhereNullComparison,
	advisor.WhereFunctionOnIndexedColumn,
	advisor.AggregateHavingWithoutAggregate,
	advisor.SetUnionMissingAll,
	advisor.SelectSubqueryInSelectList,
	advisor.WhereBetweenTimestamps,
	advisor.WhereCaseExpression,
	advisor.PaginationOffsetWithoutOrder,
	advisor.LikeWithoutWildcard,
	advisor.LikeMultipleWildcards,
	advisor.OrderByOrdinal,
}

// testdataName maps "where.n-plus-one" to "where_n_plus_one".
func testdataName(advType advisor.Type) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(string(advType))
}

func caseName(i int, statement string) string {
	return fmt.Sprintf("%d/%s", i, advisor.TruncateStatement(statement, 40))
}

func TestAntiPatternRulesFromYAML(t *testing.T) {
	for _, entry := range advisor.DefaultRegistry.Entries() {
		t.Run(string(entry.Type), func(t *testing.T) {
			runRuleTest(t, entry)
		})
	}
}

func runRuleTest(t *testing.T, entry advisor.Entry) {
	var tests []TestCase

	testFile := filepath.Join("testdata", testdataName(entry.Type)+".yaml")
	yamlFile, err := os.Open(testFile)
	require.NoError(t, err)
	defer func() {
		_ = yamlFile.Close()
	}()

	byteValue, err := io.ReadAll(yamlFile)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(byteValue, &tests))
	require.NotEmpty(t, tests, "testdata for %s has no cases", entry.Type)

	for i, tc := range tests {
		t.Run(caseName(i, tc.Statement), func(t *testing.T) {
			finding, err := advisor.Check(entry.Type, entry.Advisor, advisor.Context{
				Normalized: sqltext.Normalize(tc.Statement),
				Original:   tc.Statement,
			})
			require.NoError(t, err)

			if tc.Want == nil {
				require.Nilf(t, finding, "rule: %s, statement: %s", entry.Type, tc.Statement)
				return
			}
			require.NotNilf(t, finding, "rule: %s, statement: %s", entry.Type, tc.Statement)
			require.Equal(t, tc.Want.IssueType, finding.IssueType)
			require.Equal(t, tc.Want.Severity, finding.Severity)
			require.Equal(t, tc.Statement, finding.Query)
			require.Nil(t, finding.LineNumber)
			if tc.Want.Description != "" {
				require.Equal(t, tc.Want.Description, finding.Description)
			}
			if tc.Want.Fix != "" {
				require.Equal(t, tc.Want.Fix, finding.Fix)
			}
		})
	}
}

func TestRegistrationOrder(t *testing.T) {
	entries := advisor.DefaultRegistry.Entries()
	require.Len(t, entries, len(expectedOrder))
	for i, entry := range entries {
		require.Equal(t, expectedOrder[i], entry.Type, "position %d", i)
	}
}

func TestIssueMetadata(t *testing.T) {
	seen := make(map[string]advisor.Type)
	for _, entry := range advisor.DefaultRegistry.Entries() {
		issue, ok := entry.Issue()
		require.True(t, ok, "%s does not describe its issue", entry.Type)
		require.NotEmpty(t, issue.Type)
		require.NotEmpty(t, issue.Description)
		require.NotEmpty(t, issue.Fix)
		require.NotEmpty(t, issue.Impact)
		require.NotEqual(t, types.SeverityUnspecified, issue.Severity)

		prev, dup := seen[issue.Type]
		require.False(t, dup, "issue type %q used by %s and %s", issue.Type, prev, entry.Type)
		seen[issue.Type] = entry.Type
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	r := advisor.NewRegistry()
	registerAntiPatternRules(r)
	require.Equal(t, len(expectedOrder), r.Len())
	require.Panics(t, func() {
		r.Register(advisor.WhereNullComparison, &WhereNullComparisonAdvisor{})
	})
	require.Panics(t, func() {
		r.Register("custom.nil", nil)
	})
}

func TestChecksTolerateMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"(((",
		")))",
		"EXISTS (",
		"EXISTS (SELECT 1 FROM t WHERE (a",
		"OFFSET",
		"SELECT 'unterminated",
		"HAVING",
		"UNION",
		"IN ()",
		"WHERE ORDER BY",
		"SELECT ünïcödé FROM tåble WHERE naïve = 'ß'",
	}
	for _, entry := range advisor.DefaultRegistry.Entries() {
		for _, in := range inputs {
			_, err := advisor.Check(entry.Type, entry.Advisor, advisor.Context{
				Normalized: sqltext.Normalize(in),
				Original:   in,
			})
			require.NoError(t, err, "rule %s on %q", entry.Type, in)
		}
	}
}

func TestEmptyInputYieldsNoFinding(t *testing.T) {
	for _, entry := range advisor.DefaultRegistry.Entries() {
		finding, err := advisor.Check(entry.Type, entry.Advisor, advisor.Context{})
		require.NoError(t, err)
		require.Nil(t, finding, "rule %s fired on empty input", entry.Type)
	}
}

func TestEnclosedBody(t *testing.T) {
	tests := []struct {
		text string
		open int
		want string
	}{
		{"EXISTS (SELECT 1) AND x", 7, "SELECT 1"},
		{"(a (b) c) d", 0, "a (b) c"},
		{"(unbalanced", 0, "unbalanced"},
		{"(", 0, ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, enclosedBody(tc.text, tc.open))
	}
}
