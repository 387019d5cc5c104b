package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file. Defaults are
// applied before validation, so a file without an assumptions block loads
// with the standard rates.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills the two blanks the format allows: a wholly absent
// assumptions block means the standard rates, and a zero drawdown cap means
// the default cap. A partial assumptions block is left alone for validation
// to reject, so a typo never silently becomes a default rate.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Assumptions.IsZero() {
		config.Assumptions = domain.DefaultAssumptions()
		return
	}
	if config.Assumptions.MaxDrawdownYears <= 0 {
		config.Assumptions.MaxDrawdownYears = domain.DefaultMaxDrawdownYears
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}

	if config.Savings.CurrentCorpus.LessThan(decimal.Zero) {
		return fmt.Errorf("savings validation failed: current corpus cannot be negative")
	}

	if err := ip.validateFunds(&config.Funds); err != nil {
		return fmt.Errorf("additional funds validation failed: %w", err)
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario, config.Household.CurrentAge); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateHousehold validates the household profile
func (ip *InputParser) validateHousehold(h *domain.HouseholdProfile) error {
	if h.CurrentAge < 18 || h.CurrentAge > 100 {
		return fmt.Errorf("current age must be between 18 and 100, got %d", h.CurrentAge)
	}
	if h.FamilySize < 1 {
		return fmt.Errorf("family size must be at least 1, got %d", h.FamilySize)
	}
	if h.Children < 0 {
		return fmt.Errorf("children cannot be negative, got %d", h.Children)
	}
	if !h.CityTier.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownCityTier, int(h.CityTier))
	}

	for category, amount := range h.ExpenseOverrides {
		if !domain.KnownCategory(category) {
			return fmt.Errorf("unknown expense category %q in expense_overrides", category)
		}
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("expense override for %q cannot be negative", category)
		}
	}

	if h.MonthlyEMI.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly EMI cannot be negative")
	}
	if h.EMIYearsRemaining < 0 {
		return fmt.Errorf("EMI years remaining cannot be negative")
	}
	if h.MonthlyEMI.GreaterThan(decimal.Zero) && h.EMIYearsRemaining == 0 {
		return fmt.Errorf("EMI years remaining is required when a monthly EMI is set")
	}

	if h.DependentParents != nil {
		if h.DependentParents.MonthlySupport.LessThan(decimal.Zero) {
			return fmt.Errorf("parental monthly support cannot be negative")
		}
		if h.DependentParents.MedicalFund.LessThan(decimal.Zero) {
			return fmt.Errorf("parental medical fund cannot be negative")
		}
	}

	return nil
}

// validateFunds validates the additional fund targets
func (ip *InputParser) validateFunds(f *domain.FundTargets) error {
	if f.EmergencyFund.LessThan(decimal.Zero) {
		return fmt.Errorf("emergency fund cannot be negative")
	}
	if f.HigherEducationPerChild.LessThan(decimal.Zero) {
		return fmt.Errorf("higher education per child cannot be negative")
	}
	if f.WeddingPerChild.LessThan(decimal.Zero) {
		return fmt.Errorf("wedding per child cannot be negative")
	}
	return nil
}

// validateAssumptions validates the economic assumptions
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	lower := decimal.NewFromFloat(-0.10)
	upper := decimal.NewFromFloat(0.20)

	inflations := []struct {
		name string
		rate decimal.Decimal
	}{
		{"general inflation", a.GeneralInflation},
		{"healthcare inflation", a.HealthcareInflation},
		{"education inflation", a.EducationInflation},
	}
	for _, infl := range inflations {
		if infl.rate.LessThan(lower) || infl.rate.GreaterThan(upper) {
			return fmt.Errorf("%s must be between -10%% and 20%%", infl.name)
		}
	}

	if a.ExpectedReturn.LessThan(decimal.Zero) || a.ExpectedReturn.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("expected return must be between 0 and 1")
	}
	if a.WithdrawalRate.LessThanOrEqual(decimal.Zero) || a.WithdrawalRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("withdrawal rate must be greater than 0 and at most 0.20")
	}
	if a.MaxDrawdownYears < 1 || a.MaxDrawdownYears > 100 {
		return fmt.Errorf("max drawdown years must be between 1 and 100, got %d", a.MaxDrawdownYears)
	}
	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario, currentAge int) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.RetirementAge < currentAge {
		return fmt.Errorf("retirement age (%d) cannot be before current age (%d)",
			scenario.RetirementAge, currentAge)
	}
	if scenario.RetirementAge > 100 {
		return fmt.Errorf("retirement age must be at most 100, got %d", scenario.RetirementAge)
	}
	if scenario.CityTier != nil && !scenario.CityTier.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownCityTier, int(*scenario.CityTier))
	}
	if scenario.ExpectedReturn != nil {
		if scenario.ExpectedReturn.LessThan(decimal.Zero) || scenario.ExpectedReturn.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("expected return must be between 0 and 1")
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	downsizeTier := domain.TierSmallTowns
	ownedHome := true
	saferReturn := decimal.NewFromFloat(0.10)

	return &domain.Configuration{
		Household: domain.HouseholdProfile{
			CurrentAge: 32,
			FamilySize: 4,
			Children:   1,
			CityTier:   domain.TierMidSized,
			OwnHouse:   false,
			ExpenseOverrides: map[domain.ExpenseCategory]decimal.Decimal{
				domain.CategoryRent: decimal.NewFromInt(32000),
			},
			MonthlyEMI:        decimal.NewFromInt(18000),
			EMIYearsRemaining: 12,
			DependentParents: &domain.DependentParents{
				MonthlySupport: decimal.NewFromInt(10000),
				MedicalFund:    decimal.NewFromInt(500000),
			},
		},
		Savings: domain.Savings{
			CurrentCorpus: decimal.NewFromInt(2500000),
		},
		Funds: domain.FundTargets{
			EmergencyFund:           decimal.NewFromInt(600000),
			HigherEducationPerChild: decimal.NewFromInt(2500000),
			WeddingPerChild:         decimal.NewFromInt(1500000),
		},
		Assumptions: domain.DefaultAssumptions(),
		Scenarios: []domain.Scenario{
			{
				Name:          "Retire at 55",
				RetirementAge: 55,
			},
			{
				Name:           "Early Exit to Hometown",
				RetirementAge:  50,
				CityTier:       &downsizeTier,
				OwnHouse:       &ownedHome,
				ExpectedReturn: &saferReturn,
			},
			{
				Name:          "Work Till 60",
				RetirementAge: 60,
			},
		},
	}
}
