package domain

import "github.com/shopspring/decimal"

// ExpenseBreakdown is the monthly budget for one household in today's money.
// DebtService and DependentCare sit outside the category map because they are
// obligations, not lifestyle costs: they join the total but are never scaled
// or inflated with the lifestyle categories.
type ExpenseBreakdown struct {
	Categories    ExpenseProfile  `json:"categories"`
	DebtService   decimal.Decimal `json:"debt_service"`
	DependentCare decimal.Decimal `json:"dependent_care"`
	TotalMonthly  decimal.Decimal `json:"total_monthly"`
}

// CategoryTotal sums the lifestyle categories, excluding debt service and
// dependent care.
func (b *ExpenseBreakdown) CategoryTotal() decimal.Decimal {
	return b.Categories.Total()
}

// ExpenseProjection is the monthly expense figure grown to the retirement
// date, split by inflation bucket.
type ExpenseProjection struct {
	CurrentMonthly decimal.Decimal `json:"current_monthly"`
	General        decimal.Decimal `json:"general"`
	Healthcare     decimal.Decimal `json:"healthcare"`
	Education      decimal.Decimal `json:"education"`
	TotalMonthly   decimal.Decimal `json:"total_monthly"`
	HorizonYears   int             `json:"horizon_years"`
}

// PercentIncrease returns the total growth over the horizon as a percentage.
func (p *ExpenseProjection) PercentIncrease() decimal.Decimal {
	if p.CurrentMonthly.IsZero() {
		return decimal.Zero
	}
	return p.TotalMonthly.Sub(p.CurrentMonthly).Div(p.CurrentMonthly).Mul(decimal.NewFromInt(100))
}

// Investment profile names used for the three standard SIP plans.
const (
	ProfileConservative = "Conservative"
	ProfileModerate     = "Moderate"
	ProfileAggressive   = "Aggressive"
)

// SIPPlan is the monthly systematic investment needed to close the corpus
// gap under one return profile.
type SIPPlan struct {
	Profile      string          `json:"profile"`
	AnnualReturn decimal.Decimal `json:"annual_return"`
	Monthly      decimal.Decimal `json:"monthly"`
}

// AdditionalFunds are the lump-sum reserves wanted on top of the retirement
// corpus, in today's money.
type AdditionalFunds struct {
	EmergencyFund   decimal.Decimal `json:"emergency_fund"`
	HigherEducation decimal.Decimal `json:"higher_education"`
	Wedding         decimal.Decimal `json:"wedding"`
	ParentalMedical decimal.Decimal `json:"parental_medical"`
	Total           decimal.Decimal `json:"total"`
}

// DrawdownYear is one year of the post-retirement depletion ledger.
type DrawdownYear struct {
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Growth         decimal.Decimal `json:"growth"`
	Withdrawal     decimal.Decimal `json:"withdrawal"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// AccumulationYear is one year of the pre-retirement wealth build-up,
// split by source.
type AccumulationYear struct {
	Year           int             `json:"year"`
	Age            int             `json:"age"`
	ExistingCorpus decimal.Decimal `json:"existing_corpus"`
	SIPValue       decimal.Decimal `json:"sip_value"`
	Total          decimal.Decimal `json:"total"`
}

// EMIImpact summarizes the outstanding loan relative to the primary
// retirement horizon.
type EMIImpact struct {
	MonthlyEMI           decimal.Decimal `json:"monthly_emi"`
	YearsRemaining       int             `json:"years_remaining"`
	TotalRemaining       decimal.Decimal `json:"total_remaining"`
	EndsBeforeRetirement bool            `json:"ends_before_retirement"`
	YearsIntoRetirement  int             `json:"years_into_retirement"`
}

// ScenarioSummary holds every figure computed for one retirement timing.
// Effective* fields echo the inputs after scenario overrides so formatters
// and recommendation rules never have to re-resolve them.
type ScenarioSummary struct {
	Name              string `json:"name"`
	RetirementAge     int    `json:"retirement_age"`
	YearsToRetirement int    `json:"years_to_retirement"`

	EffectiveCityTier CityTier        `json:"effective_city_tier"`
	EffectiveOwnHouse bool            `json:"effective_own_house"`
	ExpectedReturn    decimal.Decimal `json:"expected_return"`

	CurrentExpenses ExpenseBreakdown `json:"current_expenses"`

	// RetirementBaseMonthly is today's-money spending carried into
	// retirement: the current total minus the EMI when the loan ends
	// before the retirement date.
	RetirementBaseMonthly decimal.Decimal `json:"retirement_base_monthly"`
	EMIContinues          bool            `json:"emi_continues"`

	FutureExpenses ExpenseProjection `json:"future_expenses"`

	RequiredCorpus    decimal.Decimal `json:"required_corpus"`
	CorpusFutureValue decimal.Decimal `json:"corpus_future_value"`
	RemainingCorpus   decimal.Decimal `json:"remaining_corpus"`
	Surplus           decimal.Decimal `json:"surplus"`

	SIPPlans        []SIPPlan       `json:"sip_plans"`
	AdditionalFunds AdditionalFunds `json:"additional_funds"`

	// GrandTotalRequired is the corpus plus every additional reserve.
	GrandTotalRequired decimal.Decimal `json:"grand_total_required"`

	// CorpusAtRetirement assumes the SIP actually closes the gap.
	CorpusAtRetirement  decimal.Decimal `json:"corpus_at_retirement"`
	CorpusDurationYears int             `json:"corpus_duration_years"`
	DurationCapped      bool            `json:"duration_capped"`

	Drawdown     []DrawdownYear     `json:"drawdown"`
	Accumulation []AccumulationYear `json:"accumulation"`
}

// AggressiveSIP returns the monthly SIP under the aggressive profile,
// zero when no plans were computed.
func (s *ScenarioSummary) AggressiveSIP() decimal.Decimal {
	for _, plan := range s.SIPPlans {
		if plan.Profile == ProfileAggressive {
			return plan.Monthly
		}
	}
	return decimal.Zero
}

// CoveragePercent is how much of the required corpus today's savings will
// have grown into by retirement, as a percentage.
func (s *ScenarioSummary) CoveragePercent() decimal.Decimal {
	if s.RequiredCorpus.IsZero() {
		return decimal.Zero
	}
	return s.CorpusFutureValue.Div(s.RequiredCorpus).Mul(decimal.NewFromInt(100))
}

// PlanComparison is the full engine output across all requested scenarios.
type PlanComparison struct {
	CurrentCorpus       decimal.Decimal   `json:"current_corpus"`
	Scenarios           []ScenarioSummary `json:"scenarios"`
	EMIAnalysis         *EMIImpact        `json:"emi_analysis,omitempty"`
	Recommendations     []string          `json:"recommendations"`
	RecommendedScenario string            `json:"recommended_scenario"`
	Assumptions         []string          `json:"assumptions"`
}

// FindScenario returns the summary with the given name, or nil.
func (pc *PlanComparison) FindScenario(name string) *ScenarioSummary {
	for i := range pc.Scenarios {
		if pc.Scenarios[i].Name == name {
			return &pc.Scenarios[i]
		}
	}
	return nil
}
