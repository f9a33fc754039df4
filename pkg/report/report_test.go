package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/slowql/pkg/types"
)

func finding(issue string, sev types.Severity, query string) *types.Finding {
	return &types.Finding{
		IssueType:   issue,
		Query:       query,
		Description: issue + " description",
		Fix:         issue + " fix",
		Impact:      issue + " impact",
		Severity:    sev,
	}
}

func TestGroup(t *testing.T) {
	findings := []*types.Finding{
		finding("SELECT * Usage", types.SeverityMedium, "SELECT * FROM users"),
		finding("Missing WHERE", types.SeverityHigh, "DELETE FROM users"),
		nil,
		finding("SELECT * Usage", types.SeverityMedium, "SELECT * FROM orders"),
	}

	rows := Group(findings)
	require.Len(t, rows, 2)
	assert.Equal(t, "SELECT * Usage", rows[0].Issue)
	assert.Equal(t, "SELECT * FROM users", rows[0].Query)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "Missing WHERE", rows[1].Issue)
	assert.Equal(t, 1, rows[1].Count)
	assert.Equal(t, 3, Total(rows))
}

func TestGroupDistinguishesFix(t *testing.T) {
	a := finding("Non-SARGable Query", types.SeverityHigh, "q1")
	b := finding("Non-SARGable Query", types.SeverityHigh, "q2")
	b.Fix = "another fix"

	rows := Group([]*types.Finding{a, b, a})
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "another fix", rows[1].Fix)
}

func TestGroupTruncatesQuery(t *testing.T) {
	long := "SELECT id FROM users WHERE " + strings.Repeat("x", 100)
	rows := Group([]*types.Finding{finding("Issue", types.SeverityLow, long)})
	require.Len(t, rows, 1)
	assert.Equal(t, 60, len([]rune(rows[0].Query)))
	assert.True(t, strings.HasSuffix(rows[0].Query, "..."))
	assert.Equal(t, long[:57], strings.TrimSuffix(rows[0].Query, "..."))

	exact := strings.Repeat("y", 60)
	rows = Group([]*types.Finding{finding("Issue", types.SeverityLow, exact)})
	assert.Equal(t, exact, rows[0].Query)
}

func TestGroupEmpty(t *testing.T) {
	assert.Empty(t, Group(nil))
	assert.Equal(t, 0, Total(nil))
}

func TestSortBySeverity(t *testing.T) {
	rows := []Row{
		{Issue: "low", Severity: types.SeverityLow},
		{Issue: "high-1", Severity: types.SeverityHigh},
		{Issue: "critical", Severity: types.SeverityCritical},
		{Issue: "medium", Severity: types.SeverityMedium},
		{Issue: "high-2", Severity: types.SeverityHigh},
	}
	SortBySeverity(rows)

	var got []string
	for _, r := range rows {
		got = append(got, r.Issue)
	}
	assert.Equal(t, []string{"critical", "high-1", "high-2", "medium", "low"}, got)
}

func TestCountBySeverity(t *testing.T) {
	rows := []Row{
		{Severity: types.SeverityHigh, Count: 3},
		{Severity: types.SeverityLow, Count: 1},
		{Severity: types.SeverityHigh, Count: 2},
	}
	counts := CountBySeverity(rows)
	assert.Equal(t, 5, counts[types.SeverityHigh])
	assert.Equal(t, 1, counts[types.SeverityLow])
	assert.Equal(t, 0, counts[types.SeverityCritical])

	s := Summarize(rows)
	assert.Equal(t, Summary{Total: 6, High: 5, Low: 1}, s)
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name  string
		rows  []Row
		score int
		label string
	}{
		{name: "no findings", score: 100, label: "Healthy"},
		{
			name:  "one medium",
			rows:  []Row{{Severity: types.SeverityMedium, Count: 1}},
			score: 95,
			label: "Healthy",
		},
		{
			name:  "boundary healthy",
			rows:  []Row{{Severity: types.SeverityMedium, Count: 4}},
			score: 80,
			label: "Healthy",
		},
		{
			name:  "needs attention",
			rows:  []Row{{Severity: types.SeverityCritical, Count: 1}, {Severity: types.SeverityLow, Count: 1}},
			score: 73,
			label: "Needs Attention",
		},
		{
			name:  "poor health",
			rows:  []Row{{Severity: types.SeverityHigh, Count: 4}},
			score: 40,
			label: "Poor Health",
		},
		{
			name:  "critical",
			rows:  []Row{{Severity: types.SeverityCritical, Count: 3}},
			score: 25,
			label: "Critical",
		},
		{
			name:  "penalty capped",
			rows:  []Row{{Severity: types.SeverityCritical, Count: 10}},
			score: 0,
			label: "Critical",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := HealthScore(tc.rows)
			assert.Equal(t, tc.score, h.Score)
			assert.Equal(t, tc.label, h.Label)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatText,
		"text":     FormatText,
		"JSON":     FormatJSON,
		"yml":      FormatYAML,
		"yaml":     FormatYAML,
		"csv":      FormatCSV,
		"html":     FormatHTML,
		"sarif":    FormatSARIF,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
	}
	for name, want := range tests {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}
