package advisor

import (
	"strings"
	"unicode/utf8"
)

// TruncateStatement shortens a statement to at most maxRunes runes for display,
// ending it with "..." when it had to be cut.
func TruncateStatement(statement string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(statement) <= maxRunes {
		return statement
	}
	if maxRunes <= 3 {
		return strings.Repeat(".", maxRunes)
	}
	runes := []rune(statement)
	return string(runes[:maxRunes-3]) + "..."
}

// OneLine returns the statement collapsed onto one line, for log records.
func OneLine(statement string) string {
	return strings.Join(strings.Fields(statement), " ")
}
