package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// PlanningEngine orchestrates all retirement calculations. It is stateless
// apart from the logger: the same engine can serve any number of
// configurations concurrently.
type PlanningEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewPlanningEngine creates a new planning engine with no-op logging.
func NewPlanningEngine() *PlanningEngine {
	return &PlanningEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the planning engine. If nil is provided, a
// no-op logger is used.
func (e *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// resolveScenario applies scenario overrides on top of the household
// profile and assumptions. The returned profile is a copy; the shared
// overrides map is only ever read.
func resolveScenario(config *domain.Configuration, scenario *domain.Scenario) (domain.HouseholdProfile, decimal.Decimal) {
	household := config.Household
	if scenario.CityTier != nil {
		household.CityTier = *scenario.CityTier
	}
	if scenario.OwnHouse != nil {
		household.OwnHouse = *scenario.OwnHouse
	}

	expectedReturn := config.Assumptions.ExpectedReturn
	if scenario.ExpectedReturn != nil {
		expectedReturn = *scenario.ExpectedReturn
	}
	return household, expectedReturn
}

// validateScenario rejects inputs the projections cannot make sense of.
// Bad values are errors, never silently clamped.
func (e *PlanningEngine) validateScenario(config *domain.Configuration, scenario *domain.Scenario, expectedReturn decimal.Decimal) error {
	household := &config.Household

	if household.FamilySize < 1 {
		return fmt.Errorf("family size must be at least 1, got %d", household.FamilySize)
	}
	if household.Children < 0 {
		return fmt.Errorf("children cannot be negative, got %d", household.Children)
	}
	if scenario.RetirementAge < household.CurrentAge {
		return fmt.Errorf("retirement age (%d) cannot be before current age (%d)",
			scenario.RetirementAge, household.CurrentAge)
	}
	if scenario.RetirementAge > 100 {
		return fmt.Errorf("retirement age must be at most 100, got %d", scenario.RetirementAge)
	}

	// Allow deflation but cap extreme values.
	lower := decimal.NewFromFloat(-0.10)
	upper := decimal.NewFromFloat(0.20)
	inflations := []struct {
		name string
		rate decimal.Decimal
	}{
		{"general inflation", config.Assumptions.GeneralInflation},
		{"healthcare inflation", config.Assumptions.HealthcareInflation},
		{"education inflation", config.Assumptions.EducationInflation},
	}
	for _, infl := range inflations {
		if infl.rate.LessThan(lower) || infl.rate.GreaterThan(upper) {
			return fmt.Errorf("%s rate must be between -10%% and 20%%, got %s%%",
				infl.name, infl.rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
		}
	}

	if expectedReturn.LessThan(decimal.Zero) || expectedReturn.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("expected return must be between 0%% and 100%%, got %s%%",
			expectedReturn.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}

	wr := config.Assumptions.WithdrawalRate
	if wr.LessThanOrEqual(decimal.Zero) || wr.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("withdrawal rate must be greater than 0%% and at most 20%%, got %s%%",
			wr.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}

	return nil
}

// RunScenario computes the complete plan for a single retirement timing:
// today's budget, the inflated budget at retirement, the corpus that budget
// demands, the SIP plans that close the gap, and the accumulation and
// drawdown ledgers around the retirement date.
func (e *PlanningEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	household, expectedReturn := resolveScenario(config, scenario)
	if err := e.validateScenario(config, scenario, expectedReturn); err != nil {
		return nil, err
	}

	horizon := scenario.YearsToRetirement(household.CurrentAge)

	breakdown, err := CalculateMonthlyExpenses(&household)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("scenario %s: current monthly expenses %s", scenario.Name, breakdown.TotalMonthly.StringFixed(0))

	// The EMI drops out of retirement spending when the loan ends before
	// the retirement date.
	emiContinues := household.MonthlyEMI.GreaterThan(decimal.Zero) &&
		household.EMIYearsRemaining > horizon
	retirementBase := breakdown.TotalMonthly
	if !emiContinues {
		retirementBase = retirementBase.Sub(household.MonthlyEMI)
	}

	projection := ProjectRetirementExpenses(
		retirementBase,
		horizon,
		config.Assumptions.GeneralInflation,
		config.Assumptions.HealthcareInflation,
		config.Assumptions.EducationInflation,
	)
	e.Logger.Debugf("scenario %s: monthly expenses at retirement %s", scenario.Name, projection.TotalMonthly.StringFixed(0))

	required, err := CalculateCorpusNeeded(projection.TotalMonthly, config.Assumptions.WithdrawalRate)
	if err != nil {
		return nil, err
	}

	futureValue := FutureValue(config.Savings.CurrentCorpus, expectedReturn, horizon)
	remaining, surplus := RemainingCorpus(required, futureValue)

	plans := CalculateSIPPlans(remaining, horizon, expectedReturn)
	additional := CalculateAdditionalFunds(config.Funds, household.Children, household.ParentalMedicalFund())

	// The drawdown starts from the corpus the plan actually targets:
	// current savings grown to retirement plus the gap the SIP closes.
	corpusAtRetirement := futureValue.Add(remaining)
	annualExpenses := projection.TotalMonthly.Mul(monthsPerYear)
	ledger := ProjectCorpusDrawdown(
		corpusAtRetirement,
		annualExpenses,
		DrawdownExpenseGrowth,
		config.Assumptions.WithdrawalRate,
		expectedReturn,
		config.Assumptions.MaxDrawdownYears,
	)

	summary := &domain.ScenarioSummary{
		Name:              scenario.Name,
		RetirementAge:     scenario.RetirementAge,
		YearsToRetirement: horizon,

		EffectiveCityTier: household.CityTier,
		EffectiveOwnHouse: household.OwnHouse,
		ExpectedReturn:    expectedReturn,

		CurrentExpenses:       *breakdown,
		RetirementBaseMonthly: retirementBase,
		EMIContinues:          emiContinues,
		FutureExpenses:        *projection,

		RequiredCorpus:    required,
		CorpusFutureValue: futureValue,
		RemainingCorpus:   remaining,
		Surplus:           surplus,

		SIPPlans:        plans,
		AdditionalFunds: additional,

		GrandTotalRequired: required.Add(additional.Total),

		CorpusAtRetirement:  corpusAtRetirement,
		CorpusDurationYears: len(ledger),
		DurationCapped:      DrawdownCapped(ledger, config.Assumptions.MaxDrawdownYears),

		Drawdown: ledger,
	}

	summary.Accumulation = ProjectAccumulation(
		config.Savings.CurrentCorpus,
		summary.AggressiveSIP(),
		expectedReturn,
		horizon,
		household.CurrentAge,
	)

	e.Logger.Debugf("scenario %s: required corpus %s, lasts %d years",
		scenario.Name, required.StringFixed(0), summary.CorpusDurationYears)

	return summary, nil
}

// RunScenarios evaluates every configured scenario and assembles the
// comparison. The first scenario is the primary plan: recommendations and
// the EMI analysis are anchored to it.
func (e *PlanningEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.PlanComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios defined")
	}

	e.Logger.Infof("running %d scenarios", len(config.Scenarios))

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		summary, err := e.RunScenario(ctx, config, scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		scenarios[i] = *summary
	}

	primary := &scenarios[0]
	comparison := &domain.PlanComparison{
		CurrentCorpus:       config.Savings.CurrentCorpus,
		Scenarios:           scenarios,
		EMIAnalysis:         e.analyzeEMIImpact(&config.Household, primary.YearsToRetirement),
		Recommendations:     e.buildRecommendations(primary),
		RecommendedScenario: e.selectRecommendedScenario(scenarios),
		Assumptions:         config.Assumptions.GenerateAssumptions(),
	}

	return comparison, nil
}
