package report

import (
	"github.com/nsxbet/slowql/pkg/types"
)

var severityWeights = map[types.Severity]int{
	types.SeverityCritical: 25,
	types.SeverityHigh:     15,
	types.SeverityMedium:   5,
	types.SeverityLow:      2,
}

// Health is the overall query health of a report.
type Health struct {
	Score int    `json:"score" yaml:"score"`
	Label string `json:"label" yaml:"label"`
}

// HealthScore weighs every finding by its severity and subtracts the total, capped
// at 100, from a perfect score of 100.
func HealthScore(rows []Row) Health {
	penalty := 0
	for _, r := range rows {
		penalty += severityWeights[r.Severity] * r.Count
	}
	score := 100 - min(penalty, 100)
	return Health{Score: score, Label: healthLabel(score)}
}

func healthLabel(score int) string {
	switch {
	case score >= 80:
		return "Healthy"
	case score >= 60:
		return "Needs Attention"
	case score >= 40:
		return "Poor Health"
	default:
		return "Critical"
	}
}
