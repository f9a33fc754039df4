package sqltext

import (
	"strings"
)

// SplitStatements splits a SQL payload on semicolons that are not inside single or
// double quoted literals. A backslash escapes the following character. Statements are
// trimmed and empty statements are dropped.
func SplitStatements(sql string) []string {
	if sql == "" {
		return nil
	}

	var (
		parts                   []string
		cur                     strings.Builder
		inSingle, inDouble, esc bool
	)
	flush := func() {
		if stmt := strings.TrimSpace(cur.String()); stmt != "" {
			parts = append(parts, stmt)
		}
		cur.Reset()
	}

	for _, ch := range sql {
		if ch == '\\' && !esc {
			esc = true
			cur.WriteRune(ch)
			continue
		}
		switch {
		case ch == '\'' && !esc && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !esc && !inSingle:
			inDouble = !inDouble
		}
		if ch == ';' && !inSingle && !inDouble {
			flush()
		} else {
			cur.WriteRune(ch)
		}
		esc = false
	}
	flush()
	return parts
}
