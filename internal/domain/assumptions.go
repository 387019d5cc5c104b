package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultMaxDrawdownYears caps the post-retirement depletion projection.
// A corpus that survives this long is reported as lasting "50+" years.
const DefaultMaxDrawdownYears = 50

// Assumptions are the global economic rates driving every projection.
// All rates are annual fractions, e.g. 0.07 for 7%.
type Assumptions struct {
	GeneralInflation    decimal.Decimal `yaml:"general_inflation" json:"general_inflation"`
	HealthcareInflation decimal.Decimal `yaml:"healthcare_inflation" json:"healthcare_inflation"`
	EducationInflation  decimal.Decimal `yaml:"education_inflation" json:"education_inflation"`
	ExpectedReturn      decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	WithdrawalRate      decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`

	// MaxDrawdownYears bounds the depletion projection. Zero means
	// DefaultMaxDrawdownYears.
	MaxDrawdownYears int `yaml:"max_drawdown_years,omitempty" json:"max_drawdown_years,omitempty"`
}

// DefaultAssumptions returns the standard planning rates for the Indian
// market: 7% general / 11% healthcare / 9% education inflation, 12%
// equity-heavy portfolio return and a 5% safe withdrawal rate.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		GeneralInflation:    decimal.NewFromFloat(0.07),
		HealthcareInflation: decimal.NewFromFloat(0.11),
		EducationInflation:  decimal.NewFromFloat(0.09),
		ExpectedReturn:      decimal.NewFromFloat(0.12),
		WithdrawalRate:      decimal.NewFromFloat(0.05),
		MaxDrawdownYears:    DefaultMaxDrawdownYears,
	}
}

// IsZero reports whether the assumptions block was absent from the input.
func (a Assumptions) IsZero() bool {
	return a.GeneralInflation.IsZero() &&
		a.HealthcareInflation.IsZero() &&
		a.EducationInflation.IsZero() &&
		a.ExpectedReturn.IsZero() &&
		a.WithdrawalRate.IsZero() &&
		a.MaxDrawdownYears == 0
}

var assumptionsHundred = decimal.NewFromInt(100)

// GenerateAssumptions renders the rates as display strings for reports.
func (a *Assumptions) GenerateAssumptions() []string {
	capYears := a.MaxDrawdownYears
	if capYears <= 0 {
		capYears = DefaultMaxDrawdownYears
	}
	return []string{
		fmt.Sprintf("General inflation: %.1f%% annually", a.GeneralInflation.Mul(assumptionsHundred).InexactFloat64()),
		fmt.Sprintf("Healthcare inflation: %.1f%% annually", a.HealthcareInflation.Mul(assumptionsHundred).InexactFloat64()),
		fmt.Sprintf("Education inflation: %.1f%% annually", a.EducationInflation.Mul(assumptionsHundred).InexactFloat64()),
		fmt.Sprintf("Expected portfolio return: %.1f%% annually", a.ExpectedReturn.Mul(assumptionsHundred).InexactFloat64()),
		fmt.Sprintf("Safe withdrawal rate: %.1f%% of corpus", a.WithdrawalRate.Mul(assumptionsHundred).InexactFloat64()),
		fmt.Sprintf("Drawdown projection capped at %d years", capYears),
	}
}
