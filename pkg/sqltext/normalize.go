// Package sqltext holds the text-level plumbing shared by the detector and the CLI:
// normalization of a raw query into its canonical matching form, and splitting of a
// SQL payload into individual statements.
package sqltext

import (
	"strings"
)

// Normalize produces the canonical form of a query used for pattern matching.
//
// Line comments (from -- to the end of the line) and block comments (from /* to the
// nearest following */) are removed, then every run of whitespace is collapsed into a
// single space and the ends are trimmed. An unterminated block comment swallows the
// rest of the input. Comment markers inside quoted literals and identifiers ('...',
// "..." and `...`) are kept as text.
//
// Normalize never fails; the worst case is an empty string. Normalizing an already
// normalized string returns it unchanged.
func Normalize(query string) string {
	if query == "" {
		return ""
	}
	return strings.Join(strings.Fields(StripComments(query)), " ")
}

// StripComments removes line and block comments, leaving every other byte in place.
// A removed block comment is replaced by a single space so that the tokens around it
// are not glued together.
func StripComments(query string) string {
	var b strings.Builder
	b.Grow(len(query))

	// quote is the byte that opened the current literal or quoted identifier.
	var quote byte
	for i := 0; i < len(query); i++ {
		ch := query[i]

		if quote != 0 {
			b.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch {
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
			b.WriteByte(ch)
		case ch == '-' && i+1 < len(query) && query[i+1] == '-':
			end := strings.IndexByte(query[i:], '\n')
			if end < 0 {
				return b.String()
			}
			// Keep the newline; it is whitespace for the collapse step.
			i += end - 1
		case ch == '/' && i+1 < len(query) && query[i+1] == '*':
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			b.WriteByte(' ')
			i += 2 + end + 1
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
