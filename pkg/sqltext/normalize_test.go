package sqltext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n  ", ""},
		{"collapse whitespace", "SELECT  *\n\tFROM   users  ", "SELECT * FROM users"},
		{"line comment", "SELECT 1 -- trailing comment\nFROM t", "SELECT 1 FROM t"},
		{"line comment at end", "SELECT 1 FROM t -- done", "SELECT 1 FROM t"},
		{"block comment", "/* block */ SELECT 1 FROM t", "SELECT 1 FROM t"},
		{"multiline block comment", "SELECT /* one\ntwo\nthree */ id FROM t", "SELECT id FROM t"},
		{"block comment glued", "SELECT/*x*/id FROM t", "SELECT id FROM t"},
		{"non greedy block", "SELECT /* a */ id /* b */ FROM t", "SELECT id FROM t"},
		{"unterminated block", "SELECT id FROM t /* never closed\nWHERE x = 1", "SELECT id FROM t"},
		{"marker inside literal", "SELECT '--not a comment' FROM t", "SELECT '--not a comment' FROM t"},
		{"block marker inside literal", "SELECT '/* kept */' FROM t", "SELECT '/* kept */' FROM t"},
		{"comment only", "-- nothing here", ""},
		{
			"comment between clauses",
			"SELECT *\n-- pick the users\nFROM users\n/* filter */\nWHERE id = 1",
			"SELECT * FROM users WHERE id = 1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Normalize(tc.query))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	queries := []string{
		"SELECT * FROM users WHERE id = 1",
		"SELECT 1 -- c\nFROM t",
		"/* a */ UPDATE t SET x = 1",
		"SELECT 'a  b' FROM t",
	}
	for _, q := range queries {
		once := Normalize(q)
		require.Equal(t, once, Normalize(once), "query: %q", q)
	}
}

func TestNormalizeCommentPlacementInsensitive(t *testing.T) {
	base := Normalize("SELECT 1 FROM t")
	require.Equal(t, base, Normalize("SELECT 1 -- trailing comment\nFROM t"))
	require.Equal(t, base, Normalize("/* block */ SELECT 1 FROM t"))
	require.Equal(t, base, Normalize("SELECT 1 FROM t /* end */"))

	for _, quoted := range []string{`SELECT "it's" AS c FROM t`, "SELECT `it's` AS c FROM t"} {
		require.Equal(t, Normalize(quoted), Normalize(quoted+" /* SELECT * FROM x WHERE a = NULL */"))
		require.Equal(t, Normalize(quoted), Normalize(quoted+" -- a = NULL"))
	}
	require.Equal(t, `SELECT "a -- b" FROM t`, Normalize(`SELECT "a -- b" FROM t -- c`))
}
