package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// Household spending splits into three inflation buckets. Healthcare and
// education run well ahead of general inflation in India, so projecting a
// single blended rate understates late-career expense growth.
var (
	generalShare    = decimal.NewFromFloat(0.70)
	healthcareShare = decimal.NewFromFloat(0.15)
	educationShare  = decimal.NewFromFloat(0.15)
)

// ProjectRetirementExpenses grows a monthly expense figure to the retirement
// date, compounding each bucket at its own rate. A zero-year horizon returns
// the figure unchanged.
func ProjectRetirementExpenses(currentMonthly decimal.Decimal, years int, generalRate, healthcareRate, educationRate decimal.Decimal) *domain.ExpenseProjection {
	if years < 0 {
		years = 0
	}
	horizon := decimal.NewFromInt(int64(years))
	one := decimal.NewFromInt(1)

	general := currentMonthly.Mul(generalShare).Mul(one.Add(generalRate).Pow(horizon))
	healthcare := currentMonthly.Mul(healthcareShare).Mul(one.Add(healthcareRate).Pow(horizon))
	education := currentMonthly.Mul(educationShare).Mul(one.Add(educationRate).Pow(horizon))

	return &domain.ExpenseProjection{
		CurrentMonthly: currentMonthly,
		General:        general,
		Healthcare:     healthcare,
		Education:      education,
		TotalMonthly:   general.Add(healthcare).Add(education),
		HorizonYears:   years,
	}
}
