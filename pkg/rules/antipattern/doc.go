// Package antipattern implements the built-in anti-pattern checks.
//
// Every check is a textual heuristic over the normalized query: a regular
// expression match, sometimes followed by a short scan where the pattern needs
// context that a regular expression cannot express. Checks never parse SQL and
// never fail; an unrecognized query simply produces no finding.
//
// Importing this package registers all checks with advisor.DefaultRegistry in a
// fixed order.
package antipattern
