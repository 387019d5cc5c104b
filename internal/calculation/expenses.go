package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// Baseline monthly expenses in INR for a family of three, by city tier.
// Figures track typical urban household budgets; education is per child
// and gets multiplied out during calculation.
var tierBaselines = map[domain.CityTier]domain.ExpenseProfile{
	domain.TierMetro: {
		domain.CategoryRent:           decimal.NewFromInt(45000),
		domain.CategoryGroceries:      decimal.NewFromInt(15000),
		domain.CategoryUtilities:      decimal.NewFromInt(4500),
		domain.CategoryTransportation: decimal.NewFromInt(8000),
		domain.CategoryHealthcare:     decimal.NewFromInt(4000),
		domain.CategoryEntertainment:  decimal.NewFromInt(8000),
		domain.CategoryChildEducation: decimal.NewFromInt(20000),
		domain.CategoryMiscellaneous:  decimal.NewFromInt(6000),
	},
	domain.TierMidSized: {
		domain.CategoryRent:           decimal.NewFromInt(28000),
		domain.CategoryGroceries:      decimal.NewFromInt(10000),
		domain.CategoryUtilities:      decimal.NewFromInt(3000),
		domain.CategoryTransportation: decimal.NewFromInt(5000),
		domain.CategoryHealthcare:     decimal.NewFromInt(2500),
		domain.CategoryEntertainment:  decimal.NewFromInt(5000),
		domain.CategoryChildEducation: decimal.NewFromInt(12000),
		domain.CategoryMiscellaneous:  decimal.NewFromInt(4000),
	},
	domain.TierSmallTowns: {
		domain.CategoryRent:           decimal.NewFromInt(18000),
		domain.CategoryGroceries:      decimal.NewFromInt(7000),
		domain.CategoryUtilities:      decimal.NewFromInt(2500),
		domain.CategoryTransportation: decimal.NewFromInt(3000),
		domain.CategoryHealthcare:     decimal.NewFromInt(2000),
		domain.CategoryEntertainment:  decimal.NewFromInt(3000),
		domain.CategoryChildEducation: decimal.NewFromInt(8000),
		domain.CategoryMiscellaneous:  decimal.NewFromInt(3000),
	},
}

// The baselines assume a household of this size; larger families scale the
// variable categories proportionally.
const familySizeBaseline = 3

var (
	baselineSize      = decimal.NewFromInt(familySizeBaseline)
	utilitiesScaleCut = decimal.NewFromFloat(0.8)
	miscScaleCut      = decimal.NewFromFloat(0.9)
)

// BaselineExpenses returns a copy of the tier's baseline profile.
// Unknown tiers are an input error, never a silent default.
func BaselineExpenses(tier domain.CityTier) (domain.ExpenseProfile, error) {
	base, ok := tierBaselines[tier]
	if !ok {
		return nil, fmt.Errorf("no expense baseline for tier %d: %w", int(tier), domain.ErrUnknownCityTier)
	}
	return base.Clone(), nil
}

// CalculateMonthlyExpenses builds the household's monthly budget from the
// tier baseline. Adjustments apply in a fixed order: home ownership zeroes
// rent, overrides replace amounts verbatim, family size scales the variable
// categories, education multiplies per child. Rent overrides therefore win
// over the ownership adjustment, and an education override is still a
// per-child figure.
func CalculateMonthlyExpenses(household *domain.HouseholdProfile) (*domain.ExpenseBreakdown, error) {
	expenses, err := BaselineExpenses(household.CityTier)
	if err != nil {
		return nil, err
	}

	if household.OwnHouse {
		expenses[domain.CategoryRent] = decimal.Zero
	}

	for category, amount := range household.ExpenseOverrides {
		if _, ok := expenses[category]; ok {
			expenses[category] = amount
		}
	}

	if household.FamilySize > familySizeBaseline {
		factor := decimal.NewFromInt(int64(household.FamilySize)).Div(baselineSize)
		expenses[domain.CategoryGroceries] = expenses[domain.CategoryGroceries].Mul(factor)
		expenses[domain.CategoryUtilities] = expenses[domain.CategoryUtilities].Mul(factor).Mul(utilitiesScaleCut)
		expenses[domain.CategoryMiscellaneous] = expenses[domain.CategoryMiscellaneous].Mul(factor).Mul(miscScaleCut)
	}

	children := decimal.NewFromInt(int64(household.Children))
	expenses[domain.CategoryChildEducation] = expenses[domain.CategoryChildEducation].Mul(children)

	breakdown := &domain.ExpenseBreakdown{
		Categories:    expenses,
		DebtService:   household.MonthlyEMI,
		DependentCare: household.ParentalSupport(),
	}
	breakdown.TotalMonthly = breakdown.CategoryTotal().
		Add(breakdown.DebtService).
		Add(breakdown.DependentCare)

	return breakdown, nil
}
