package antipattern

import (
	"github.com/nsxbet/slowql/pkg/advisor"
)

func init() {
	registerAntiPatternRules(advisor.DefaultRegistry)
}

// registerAntiPatternRules registers every built-in check in report order.
func registerAntiPatternRules(r *advisor.Registry) {
	r.Register(advisor.StatementSelectStar, &StatementSelectStarAdvisor{})
	r.Register(advisor.StatementMissingWhere, &StatementMissingWhereAdvisor{})
	r.Register(advisor.WhereNonSargable, &WhereNonSargableAdvisor{})
	r.Register(advisor.WhereImplicitConversion, &WhereImplicitConversionAdvisor{})
	r.Register(advisor.JoinCartesianProduct, &JoinCartesianProductAdvisor{})
	r.Register(advisor.WhereNPlusOne, &WhereNPlusOneAdvisor{})
	r.Register(advisor.SubqueryCorrelated, &SubqueryCorrelatedAdvisor{})
	r.Register(advisor.WhereOrPreventsIndex, &WhereOrPreventsIndexAdvisor{})
	r.Register(advisor.PaginationLargeOffset, &PaginationLargeOffsetAdvisor{})
	r.Register(advisor.SelectUnnecessaryDistinct, &SelectUnnecessaryDistinctAdvisor{})
	r.Register(advisor.WhereMassiveInList, &WhereMassiveInListAdvisor{})
	r.Register(advisor.LikeLeadingWildcard, &LikeLeadingWildcardAdvisor{})
	r.Register(advisor.AggregateCountForExistence, &AggregateCountForExistenceAdvisor{})
	r.Register(advisor.SubqueryNotInNullable, &SubqueryNotInNullableAdvisor{})
	r.Register(advisor.SubqueryExistsWithoutLimit, &SubqueryExistsWithoutLimitAdvisor{})
	r.Register(advisor.WhereFloatingPointEquality, &WhereFloatingPointEqualityAdvisor{})
	r.Register(advisor.WhereNullComparison, &WhereNullComparisonAdvisor{})
	r.Register(advisor.WhereFunctionOnIndexedColumn, &WhereFunctionOnIndexedColumnAdvisor{})
	r.Register(advisor.AggregateHavingWithoutAggregate, &AggregateHavingWithoutAggregateAdvisor{})
	r.Register(advisor.SetUnionMissingAll, &SetUnionMissingAllAdvisor{})
	r.Register(advisor.SelectSubqueryInSelectList, &SelectSubqueryInSelectListAdvisor{})
	r.Register(advisor.WhereBetweenTimestamps, &WhereBetweenTimestampsAdvisor{})
	r.Register(advisor.WhereCaseExpression, &WhereCaseExpressionAdvisor{})
	r.Register(advisor.PaginationOffsetWithoutOrder, &PaginationOffsetWithoutOrderAdvisor{})
	r.Register(advisor.LikeWithoutWildcard, &LikeWithoutWildcardAdvisor{})
	r.Register(advisor.LikeMultipleWildcards, &LikeMultipleWildcardsAdvisor{})
	r.Register(advisor.OrderByOrdinal, &OrderByOrdinalAdvisor{})
}
