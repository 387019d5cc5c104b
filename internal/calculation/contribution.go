package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// Standard return profiles offered alongside the household's own expected
// return. Conservative tracks debt-heavy portfolios, moderate a balanced mix.
var (
	conservativeReturn = decimal.NewFromFloat(0.08)
	moderateReturn     = decimal.NewFromFloat(0.10)
)

// CalculateRequiredSIP inverts the future-value-of-annuity formula: the
// monthly contribution whose compounded stream reaches target after the
// given years. Two limiting forms keep the math total: a non-positive
// horizon means the entire target is due now, and a zero return degrades
// to straight division across the months.
func CalculateRequiredSIP(target decimal.Decimal, years int, annualReturn decimal.Decimal) decimal.Decimal {
	if years <= 0 {
		return target
	}

	months := decimal.NewFromInt(int64(years) * 12)
	monthlyRate := annualReturn.Div(monthsPerYear)
	if monthlyRate.IsZero() {
		return target.Div(months)
	}

	growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(months).Sub(decimal.NewFromInt(1))
	return target.Mul(monthlyRate).Div(growth)
}

// CalculateSIPPlans prices the corpus gap under the three standard profiles.
// The aggressive profile uses the household's expected return, so all three
// come from the same solver with different rates.
func CalculateSIPPlans(target decimal.Decimal, years int, expectedReturn decimal.Decimal) []domain.SIPPlan {
	return []domain.SIPPlan{
		{
			Profile:      domain.ProfileConservative,
			AnnualReturn: conservativeReturn,
			Monthly:      CalculateRequiredSIP(target, years, conservativeReturn),
		},
		{
			Profile:      domain.ProfileModerate,
			AnnualReturn: moderateReturn,
			Monthly:      CalculateRequiredSIP(target, years, moderateReturn),
		},
		{
			Profile:      domain.ProfileAggressive,
			AnnualReturn: expectedReturn,
			Monthly:      CalculateRequiredSIP(target, years, expectedReturn),
		},
	}
}

// ProjectAccumulation tracks the wealth build-up year by year until
// retirement: existing corpus compounding annually plus the SIP stream
// compounding monthly. Row zero is the starting position.
func ProjectAccumulation(openingCorpus, monthlySIP, annualReturn decimal.Decimal, years, currentAge int) []domain.AccumulationYear {
	if years < 0 {
		years = 0
	}

	one := decimal.NewFromInt(1)
	monthlyRate := annualReturn.Div(monthsPerYear)

	rows := make([]domain.AccumulationYear, 0, years+1)
	for year := 0; year <= years; year++ {
		existing := FutureValue(openingCorpus, annualReturn, year)

		sipValue := decimal.Zero
		if year > 0 {
			months := decimal.NewFromInt(int64(year) * 12)
			if monthlyRate.IsZero() {
				sipValue = monthlySIP.Mul(months)
			} else {
				growth := one.Add(monthlyRate).Pow(months).Sub(one)
				sipValue = monthlySIP.Mul(growth.Div(monthlyRate))
			}
		}

		rows = append(rows, domain.AccumulationYear{
			Year:           year,
			Age:            currentAge + year,
			ExistingCorpus: existing,
			SIPValue:       sipValue,
			Total:          existing.Add(sipValue),
		})
	}
	return rows
}
