package antipattern

import "regexp"

// enclosedBody returns the text following the opening parenthesis at index open,
// up to its matching closing parenthesis. Unbalanced input runs to the end of text.
func enclosedBody(text string, open int) string {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[open+1 : i]
			}
		}
	}
	if open+1 > len(text) {
		return ""
	}
	return text[open+1:]
}

// anyMatchNotFollowedBy reports whether the text after some match of pattern
// does not match follow. Anchor follow with ^ to require it right after the match.
func anyMatchNotFollowedBy(pattern, follow *regexp.Regexp, text string) bool {
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if !follow.MatchString(text[loc[1]:]) {
			return true
		}
	}
	return false
}
