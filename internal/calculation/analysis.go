package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// Thresholds for the recommendation rules.
var (
	sipAffordabilityShare = decimal.NewFromFloat(0.30)
	coverageFull          = decimal.NewFromInt(100)
	coverageStrong        = decimal.NewFromInt(75)
	coverageHalf          = decimal.NewFromInt(50)
	coverageStarted       = decimal.NewFromInt(25)
)

// A corpus lasting fewer years than this draws a longevity warning.
const comfortableDurationYears = 25

// buildRecommendations derives advice from the primary scenario: time
// horizon, how far current savings go, SIP affordability, housing, city
// tier, loan runoff, dependent parents and corpus longevity.
func (e *PlanningEngine) buildRecommendations(s *domain.ScenarioSummary) []string {
	recs := make([]string, 0, 8)

	switch {
	case s.YearsToRetirement < 10:
		recs = append(recs, "Less than 10 years to retirement - consider aggressive saving and a delayed retirement date")
	case s.YearsToRetirement < 20:
		recs = append(recs, "Moderate time horizon - focus on a balanced portfolio with higher equity allocation")
	default:
		recs = append(recs, "Good time horizon - start with an aggressive equity portfolio and gradually shift to debt")
	}

	if s.CorpusFutureValue.GreaterThan(decimal.Zero) {
		coverage := s.CoveragePercent()
		switch {
		case coverage.GreaterThanOrEqual(coverageFull):
			recs = append(recs, "Your current corpus will be sufficient for retirement on its own")
		case coverage.GreaterThanOrEqual(coverageStrong):
			recs = append(recs, "You're on track - current corpus covers the majority of retirement needs")
		case coverage.GreaterThanOrEqual(coverageHalf):
			recs = append(recs, "Good progress - current corpus covers a significant portion of retirement")
		case coverage.GreaterThanOrEqual(coverageStarted):
			recs = append(recs, "You've made a start - continue building your retirement corpus")
		default:
			recs = append(recs, "You need to accelerate retirement savings significantly")
		}
	} else {
		recs = append(recs, "Start your retirement planning now - every year of delay increases the required SIP")
	}

	affordable := s.CurrentExpenses.TotalMonthly.Mul(sipAffordabilityShare)
	if s.AggressiveSIP().GreaterThan(affordable) {
		recs = append(recs, "Required SIP is high - consider increasing the retirement age or reducing expenses")
	}

	if s.EffectiveOwnHouse {
		recs = append(recs, "Owning a house significantly reduces the retirement corpus requirement")
	} else {
		recs = append(recs, "Consider buying a house to reduce retirement expenses")
	}

	if s.EffectiveCityTier == domain.TierMetro {
		recs = append(recs, "Consider retiring in a Tier 2/3 city to reduce the corpus requirement by 30-50%")
	}

	if s.EMIContinues {
		recs = append(recs, "Try to clear the EMI before retirement to reduce post-retirement expenses")
	}

	if !s.CurrentExpenses.DependentCare.IsZero() {
		recs = append(recs, "Factor in rising healthcare costs for elderly parents - consider separate medical insurance")
	}

	if s.CorpusDurationYears < comfortableDurationYears {
		recs = append(recs, "Corpus may not last the full retirement - consider increasing savings or reducing expenses")
	}

	return recs
}

// selectRecommendedScenario picks the cheapest plan to execute: the lowest
// aggressive-profile SIP, with corpus longevity breaking ties.
func (e *PlanningEngine) selectRecommendedScenario(scenarios []domain.ScenarioSummary) string {
	if len(scenarios) == 0 {
		return ""
	}

	best := &scenarios[0]
	for i := 1; i < len(scenarios); i++ {
		candidate := &scenarios[i]
		switch {
		case candidate.AggressiveSIP().LessThan(best.AggressiveSIP()):
			best = candidate
		case candidate.AggressiveSIP().Equal(best.AggressiveSIP()) &&
			candidate.CorpusDurationYears > best.CorpusDurationYears:
			best = candidate
		}
	}
	return best.Name
}

// analyzeEMIImpact sizes the outstanding loan against the primary horizon.
// Households without a loan get no analysis block at all.
func (e *PlanningEngine) analyzeEMIImpact(household *domain.HouseholdProfile, horizonYears int) *domain.EMIImpact {
	if household.MonthlyEMI.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	impact := &domain.EMIImpact{
		MonthlyEMI:     household.MonthlyEMI,
		YearsRemaining: household.EMIYearsRemaining,
		TotalRemaining: household.MonthlyEMI.
			Mul(monthsPerYear).
			Mul(decimal.NewFromInt(int64(household.EMIYearsRemaining))),
		EndsBeforeRetirement: household.EMIYearsRemaining <= horizonYears,
	}
	if !impact.EndsBeforeRetirement {
		impact.YearsIntoRetirement = household.EMIYearsRemaining - horizonYears
	}
	return impact
}
