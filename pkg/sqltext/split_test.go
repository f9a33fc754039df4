package sqltext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{"empty", "", nil},
		{"only separators", " ; ;\n;", nil},
		{"single without semicolon", "SELECT 1", []string{"SELECT 1"}},
		{"two statements", "SELECT 1; SELECT 2;", []string{"SELECT 1", "SELECT 2"}},
		{"semicolon in single quotes", "SELECT ';' FROM t; SELECT 2", []string{"SELECT ';' FROM t", "SELECT 2"}},
		{"semicolon in double quotes", `SELECT "a;b" FROM t; SELECT 2`, []string{`SELECT "a;b" FROM t`, "SELECT 2"}},
		{"escaped quote", `SELECT 'it\'s; fine'; SELECT 2`, []string{`SELECT 'it\'s; fine'`, "SELECT 2"}},
		{"multiline", "SELECT *\nFROM users\nWHERE id = 1;\nDELETE FROM logs;\n", []string{"SELECT *\nFROM users\nWHERE id = 1", "DELETE FROM logs"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SplitStatements(tc.sql))
		})
	}
}
