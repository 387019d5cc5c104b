package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseProjectionPercentIncrease(t *testing.T) {
	p := ExpenseProjection{
		CurrentMonthly: decimal.NewFromInt(100000),
		TotalMonthly:   decimal.NewFromInt(150000),
	}
	assert.True(t, p.PercentIncrease().Equal(decimal.NewFromInt(50)))

	empty := ExpenseProjection{}
	assert.True(t, empty.PercentIncrease().IsZero())
}

func TestScenarioSummaryAggressiveSIP(t *testing.T) {
	s := ScenarioSummary{
		SIPPlans: []SIPPlan{
			{Profile: ProfileConservative, Monthly: decimal.NewFromInt(50000)},
			{Profile: ProfileModerate, Monthly: decimal.NewFromInt(42000)},
			{Profile: ProfileAggressive, Monthly: decimal.NewFromInt(35000)},
		},
	}
	assert.True(t, s.AggressiveSIP().Equal(decimal.NewFromInt(35000)))

	var noPlans ScenarioSummary
	assert.True(t, noPlans.AggressiveSIP().IsZero())
}

func TestScenarioSummaryCoveragePercent(t *testing.T) {
	s := ScenarioSummary{
		RequiredCorpus:    decimal.NewFromInt(40000000),
		CorpusFutureValue: decimal.NewFromInt(10000000),
	}
	assert.True(t, s.CoveragePercent().Equal(decimal.NewFromInt(25)))

	var zero ScenarioSummary
	assert.True(t, zero.CoveragePercent().IsZero(), "zero required corpus must not divide")
}

func TestPlanComparisonFindScenario(t *testing.T) {
	pc := PlanComparison{
		Scenarios: []ScenarioSummary{
			{Name: "Base Retirement"},
			{Name: "Early Retirement"},
		},
	}

	found := pc.FindScenario("Early Retirement")
	require.NotNil(t, found)
	assert.Equal(t, "Early Retirement", found.Name)

	assert.Nil(t, pc.FindScenario("Never Retire"))
}

func TestExpenseBreakdownCategoryTotal(t *testing.T) {
	b := ExpenseBreakdown{
		Categories: ExpenseProfile{
			CategoryRent:      decimal.NewFromInt(28000),
			CategoryGroceries: decimal.NewFromInt(10000),
		},
		DebtService:   decimal.NewFromInt(18000),
		DependentCare: decimal.NewFromInt(10000),
		TotalMonthly:  decimal.NewFromInt(66000),
	}
	assert.True(t, b.CategoryTotal().Equal(decimal.NewFromInt(38000)),
		"debt service and dependent care stay out of the category total")
}
