// Package pkg provides static detection of SQL performance anti-patterns for Go applications.
//
// slowql offers both a high-level and a low-level API for scanning SQL text for
// patterns known to hurt performance or correctness. Queries are never executed.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - reviewer: High-level API for reviewing SQL payloads (recommended starting point)
//   - detector: Dispatches the registered checks over queries, sequentially or on a worker pool
//   - advisor: Check interface, ordered registry and panic-safe execution
//   - rules/antipattern: The built-in checks, one per anti-pattern
//   - sqltext: Query normalization and quote-aware statement splitting
//   - mysqlparser: MySQL lexer based statement splitting
//   - report: Grouped report rows, health score, renderers and file export
//   - types: Severity and Finding
//   - config: Configuration loading and validation
//   - logger: Logging setup
//
// # Getting Started
//
// For most use cases, start with the reviewer package:
//
//	import "github.com/nsxbet/slowql/pkg/reviewer"
//
//	func main() {
//	    r := reviewer.New()
//	    result, err := r.Review(context.Background(), sqlStatements)
//	    // Process results...
//	}
//
// To analyze queries that are already split, use the detector directly:
//
//	d := detector.New()
//	findings := d.Analyze("SELECT * FROM users", "DELETE FROM logs")
//
// # Check Categories
//
// Statement: SELECT *, UPDATE or DELETE without WHERE
//
// Filtering: non-SARGable predicates, implicit conversions, functions on
// indexed columns, OR across columns, massive IN lists, floating point
// equality, NULL comparison with =, BETWEEN on timestamps, CASE in WHERE
//
// Joins and subqueries: cartesian products, correlated subqueries, NOT IN
// over subqueries, EXISTS without LIMIT, scalar subqueries in the select list
//
// Pattern matching: leading wildcards, LIKE without wildcards, many wildcards
//
// Pagination and sets: large OFFSET, OFFSET without ORDER BY, UNION without
// ALL, unnecessary DISTINCT, ORDER BY ordinal, HAVING instead of WHERE,
// COUNT(*) for existence, N+1 lookups
//
// # Severity
//
// Every finding carries one of four severities, from most to least harmful:
// CRITICAL, HIGH, MEDIUM and LOW. Reports are sorted in that order.
package pkg
