package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the most achievable scenario.
type Recommendation struct {
	ScenarioName  string
	MonthlySIP    decimal.Decimal
	Coverage      decimal.Decimal
	DurationYears int
}

// AnalyzeScenarios determines the scenario with the lowest aggressive-profile SIP,
// preferring the one whose corpus lasts longer on ties.
// Extracted from embedded console logic for testability.
func AnalyzeScenarios(results *domain.PlanComparison) Recommendation {
	type ranked struct {
		name     string
		sip      decimal.Decimal
		coverage decimal.Decimal
		duration int
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		ranks = append(ranks, ranked{sc.Name, sc.AggressiveSIP(), sc.CoveragePercent(), sc.CorpusDurationYears})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].sip.Equal(ranks[j].sip) {
			return ranks[i].duration > ranks[j].duration
		}
		return ranks[i].sip.LessThan(ranks[j].sip)
	})
	best := ranks[0]
	return Recommendation{
		ScenarioName:  best.name,
		MonthlySIP:    best.sip,
		Coverage:      best.coverage,
		DurationYears: best.duration,
	}
}
