package reviewer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/slowql/pkg/report"
)

func TestStats(t *testing.T) {
	r := New()
	s := r.Stats()
	assert.Equal(t, 0, s.TotalIssues)
	assert.Empty(t, s.MostCommonIssue)

	_, err := r.Review(context.Background(), "SELECT * FROM a; SELECT * FROM b; DELETE FROM c", quiet())
	require.NoError(t, err)
	_, err = r.Review(context.Background(), "SELECT * FROM d", quiet())
	require.NoError(t, err)

	s = r.Stats()
	assert.Equal(t, 3, s.Breakdown["SELECT * Usage"])
	assert.Equal(t, 1, s.Breakdown["Missing WHERE in UPDATE/DELETE"])
	assert.Equal(t, "SELECT * Usage", s.MostCommonIssue)
	assert.Equal(t, len(s.Breakdown), s.UniqueIssueTypes)
	assert.GreaterOrEqual(t, s.TotalIssues, 4)

	r.ResetStats()
	assert.Equal(t, 0, r.Stats().TotalIssues)
}

func TestSuggestIndexes(t *testing.T) {
	rows := []report.Row{
		{Issue: "SELECT * Usage"},
		{Issue: "Leading Wildcard"},
		{Issue: "OR Prevents Index"},
		{Issue: "Leading Wildcard"},
	}
	assert.Equal(t, []string{
		"-- For Leading Wildcard issues:",
		"Consider full-text index",
		"-- For OR Prevents Index issues:",
		"Create separate indexes for each condition",
	}, SuggestIndexes(rows))
	assert.Empty(t, SuggestIndexes([]report.Row{{Issue: "SELECT * Usage"}}))
}

func TestCompare(t *testing.T) {
	r := New()
	c, err := r.Compare(context.Background(),
		"SELECT * FROM users WHERE name LIKE '%son'",
		"SELECT id, name FROM users WHERE name LIKE 'son%'",
		quiet(),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, c.OriginalIssues)
	assert.Equal(t, 0, c.OptimizedIssues)
	assert.Equal(t, 2, c.IssuesResolved)
	assert.InDelta(t, 100.0, c.ImprovementPercentage, 0.001)
	assert.Empty(t, c.RemainingIssues)
	assert.Equal(t, 0, r.Stats().TotalIssues)
}

func TestCompareNoOriginalIssues(t *testing.T) {
	c, err := New().Compare(context.Background(), "SELECT id FROM users WHERE id = 1", "SELECT * FROM users", quiet())
	require.NoError(t, err)
	assert.Equal(t, -1, c.IssuesResolved)
	assert.Zero(t, c.ImprovementPercentage)
	assert.Equal(t, []string{"SELECT * Usage"}, c.RemainingIssues)
}
