package advisor

// Type identifies a registered check.
type Type string

const (
	// StatementSelectStar flags 'SELECT *'.
	StatementSelectStar Type = "statement.select-star"
	// StatementMissingWhere flags UPDATE and DELETE statements without a WHERE clause.
	StatementMissingWhere Type = "statement.missing-where"
	// WhereNonSargable flags functions or arithmetic on the column side of a WHERE comparison.
	WhereNonSargable Type = "where.non-sargable"
	// WhereImplicitConversion flags string-like columns compared to bare numbers.
	WhereImplicitConversion Type = "where.implicit-conversion"
	// JoinCartesianProduct flags comma joins without any join condition.
	JoinCartesianProduct Type = "join.cartesian-product"
	// WhereNPlusOne flags single-row lookups by foreign key against a placeholder.
	WhereNPlusOne Type = "where.n-plus-one"
	// SubqueryCorrelated flags subqueries that reference an outer table column.
	SubqueryCorrelated Type = "subquery.correlated"
	// WhereOrPreventsIndex flags OR across column comparisons.
	WhereOrPreventsIndex Type = "where.or-prevents-index"
	// PaginationLargeOffset flags OFFSET values above 1000.
	PaginationLargeOffset Type = "pagination.large-offset"
	// SelectUnnecessaryDistinct flags DISTINCT on id-like columns.
	SelectUnnecessaryDistinct Type = "select.unnecessary-distinct"
	// WhereMassiveInList flags IN lists with more than 50 items.
	WhereMassiveInList Type = "where.massive-in-list"
	// LikeLeadingWildcard flags LIKE patterns starting with '%'.
	LikeLeadingWildcard Type = "like.leading-wildcard"
	// AggregateCountForExistence flags COUNT(*) > 0.
	AggregateCountForExistence Type = "aggregate.count-for-existence"
	// SubqueryNotInNullable flags NOT IN (SELECT ...).
	SubqueryNotInNullable Type = "subquery.not-in-nullable"
	// SubqueryExistsWithoutLimit flags EXISTS subqueries without LIMIT.
	SubqueryExistsWithoutLimit Type = "subquery.exists-without-limit"
	// WhereFloatingPointEquality flags exact equality on money-like columns.
	WhereFloatingPointEquality Type = "where.floating-point-equality"
	// WhereNullComparison flags '= NULL' and '!= NULL'.
	WhereNullComparison Type = "where.null-comparison"
	// WhereFunctionOnIndexedColumn flags functions wrapping commonly indexed columns.
	WhereFunctionOnIndexedColumn Type = "where.function-on-indexed-column"
	// AggregateHavingWithoutAggregate flags HAVING used for plain row filtering.
	AggregateHavingWithoutAggregate Type = "aggregate.having-without-aggregate"
	// SetUnionMissingAll flags UNION without ALL.
	SetUnionMissingAll Type = "set.union-missing-all"
	// SelectSubqueryInSelectList flags subqueries in the projection.
	SelectSubqueryInSelectList Type = "select.subquery-in-select-list"
	// WhereBetweenTimestamps flags BETWEEN on bare date literals.
	WhereBetweenTimestamps Type = "where.between-timestamps"
	// WhereCaseExpression flags CASE WHEN inside WHERE.
	WhereCaseExpression Type = "where.case-expression"
	// PaginationOffsetWithoutOrder flags OFFSET without ORDER BY.
	PaginationOffsetWithoutOrder Type = "pagination.offset-without-order"
	// LikeWithoutWildcard flags LIKE on a literal without wildcards.
	LikeWithoutWildcard Type = "like.without-wildcard"
	// LikeMultipleWildcards flags more than two '%' characters.
	LikeMultipleWildcards Type = "like.multiple-wildcards"
	// OrderByOrdinal flags ORDER BY <position>.
	OrderByOrdinal Type = "order-by.ordinal"
)
