package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCityTier is returned when a city tier is outside the supported set.
var ErrUnknownCityTier = errors.New("unknown city tier")

// ExpenseCategory identifies one line of the monthly household budget.
type ExpenseCategory string

const (
	CategoryRent           ExpenseCategory = "rent"
	CategoryGroceries      ExpenseCategory = "groceries"
	CategoryUtilities      ExpenseCategory = "utilities"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryHealthcare     ExpenseCategory = "healthcare"
	CategoryEntertainment  ExpenseCategory = "entertainment"
	CategoryChildEducation ExpenseCategory = "education_child"
	CategoryMiscellaneous  ExpenseCategory = "miscellaneous"
)

// Categories returns every expense category in canonical display order.
// Profiles are maps, so anything that renders a breakdown must iterate
// this slice instead of the map.
func Categories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryRent,
		CategoryGroceries,
		CategoryUtilities,
		CategoryTransportation,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryChildEducation,
		CategoryMiscellaneous,
	}
}

// KnownCategory reports whether c is one of the supported categories.
func KnownCategory(c ExpenseCategory) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns a human-readable label, e.g. "education_child" -> "Education Child".
func (c ExpenseCategory) Title() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ExpenseProfile maps each expense category to a monthly amount in INR.
type ExpenseProfile map[ExpenseCategory]decimal.Decimal

// Clone returns a deep copy so adjustments never mutate a shared baseline.
func (p ExpenseProfile) Clone() ExpenseProfile {
	out := make(ExpenseProfile, len(p))
	for cat, amount := range p {
		out[cat] = amount
	}
	return out
}

// Total sums all category amounts.
func (p ExpenseProfile) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p {
		total = total.Add(amount)
	}
	return total
}

// CityTier classifies the cost-of-living band of an Indian city.
type CityTier int

const (
	TierMetro      CityTier = 1 // Mumbai, Delhi, Bangalore
	TierMidSized   CityTier = 2 // Pune, Jaipur, Coimbatore
	TierSmallTowns CityTier = 3
)

// Tiers returns the supported tiers, costliest first.
func Tiers() []CityTier {
	return []CityTier{TierMetro, TierMidSized, TierSmallTowns}
}

// Valid reports whether t is a supported tier.
func (t CityTier) Valid() bool {
	return t >= TierMetro && t <= TierSmallTowns
}

// Label returns the display name for the tier.
func (t CityTier) Label() string {
	switch t {
	case TierMetro:
		return "Tier 1 (Mumbai, Delhi, Bangalore)"
	case TierMidSized:
		return "Tier 2 (Pune, Jaipur, Coimbatore)"
	case TierSmallTowns:
		return "Tier 3 (Small Cities/Towns)"
	default:
		return fmt.Sprintf("Tier %d (unknown)", int(t))
	}
}

// ParseCityTier accepts "1", "tier_2", "Tier 3", "tier-1" and full labels
// such as "Tier 2 (Pune, Jaipur, Coimbatore)".
func ParseCityTier(s string) (CityTier, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	norm = strings.TrimPrefix(norm, "tier")
	norm = strings.TrimSpace(norm)
	if i := strings.IndexAny(norm, " ("); i >= 0 {
		norm = norm[:i]
	}
	n, err := strconv.Atoi(norm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCityTier, s)
	}
	t := CityTier(n)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCityTier, s)
	}
	return t, nil
}

// UnmarshalYAML accepts either an integer tier or any string ParseCityTier understands.
func (t *CityTier) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		tier := CityTier(n)
		if !tier.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownCityTier, n)
		}
		*t = tier
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tier, err := ParseCityTier(s)
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// MarshalYAML writes the tier as its integer form.
func (t CityTier) MarshalYAML() (interface{}, error) {
	return int(t), nil
}

// UnmarshalJSON accepts the same forms as UnmarshalYAML.
func (t *CityTier) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		tier, err := ParseCityTier(s)
		if err != nil {
			return err
		}
		*t = tier
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownCityTier, raw)
	}
	tier := CityTier(n)
	if !tier.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCityTier, n)
	}
	*t = tier
	return nil
}

// MarshalJSON writes the tier as its integer form.
func (t CityTier) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// DependentParents captures ongoing support for parents living off the
// household's income, plus a one-time medical emergency reserve.
type DependentParents struct {
	MonthlySupport decimal.Decimal `yaml:"monthly_support" json:"monthly_support"`
	MedicalFund    decimal.Decimal `yaml:"medical_fund" json:"medical_fund"`
}

// HouseholdProfile is the demographic and expense snapshot of one household.
type HouseholdProfile struct {
	CurrentAge int      `yaml:"current_age" json:"current_age"`
	FamilySize int      `yaml:"family_size" json:"family_size"`
	Children   int      `yaml:"children" json:"children"`
	CityTier   CityTier `yaml:"city_tier" json:"city_tier"`
	OwnHouse   bool     `yaml:"own_house" json:"own_house"`

	// ExpenseOverrides replaces tier baseline amounts per category.
	// A partial map is fine; absent categories keep the baseline.
	ExpenseOverrides map[ExpenseCategory]decimal.Decimal `yaml:"expense_overrides,omitempty" json:"expense_overrides,omitempty"`

	// Loan servicing. EMIYearsRemaining determines whether the EMI outlives
	// the accumulation horizon.
	MonthlyEMI        decimal.Decimal `yaml:"monthly_emi,omitempty" json:"monthly_emi,omitempty"`
	EMIYearsRemaining int             `yaml:"emi_years_remaining,omitempty" json:"emi_years_remaining,omitempty"`

	DependentParents *DependentParents `yaml:"dependent_parents,omitempty" json:"dependent_parents,omitempty"`
}

// ParentalSupport returns the monthly dependent-care amount (zero without parents).
func (h *HouseholdProfile) ParentalSupport() decimal.Decimal {
	if h.DependentParents == nil {
		return decimal.Zero
	}
	return h.DependentParents.MonthlySupport
}

// ParentalMedicalFund returns the one-time parental medical reserve (zero without parents).
func (h *HouseholdProfile) ParentalMedicalFund() decimal.Decimal {
	if h.DependentParents == nil {
		return decimal.Zero
	}
	return h.DependentParents.MedicalFund
}

// Savings is the current state of the household's retirement investments
// (EPF, PPF, mutual funds and similar, taken as one number).
type Savings struct {
	CurrentCorpus decimal.Decimal `yaml:"current_corpus" json:"current_corpus"`
}

// FundTargets are lump sums wanted on top of the retirement corpus,
// expressed in today's money.
type FundTargets struct {
	EmergencyFund           decimal.Decimal `yaml:"emergency_fund" json:"emergency_fund"`
	HigherEducationPerChild decimal.Decimal `yaml:"higher_education_per_child" json:"higher_education_per_child"`
	WeddingPerChild         decimal.Decimal `yaml:"wedding_per_child" json:"wedding_per_child"`
}

// Scenario is one retirement timing to evaluate. Pointer fields override the
// household/assumption defaults when set, e.g. retiring in a cheaper city.
type Scenario struct {
	Name          string `yaml:"name" json:"name"`
	RetirementAge int    `yaml:"retirement_age" json:"retirement_age"`

	CityTier       *CityTier        `yaml:"city_tier,omitempty" json:"city_tier,omitempty"`
	OwnHouse       *bool            `yaml:"own_house,omitempty" json:"own_house,omitempty"`
	ExpectedReturn *decimal.Decimal `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
}

// YearsToRetirement is the accumulation horizon in whole years.
func (s *Scenario) YearsToRetirement(currentAge int) int {
	return s.RetirementAge - currentAge
}

// Configuration is the complete input document.
type Configuration struct {
	Household   HouseholdProfile `yaml:"household" json:"household"`
	Savings     Savings          `yaml:"savings" json:"savings"`
	Funds       FundTargets      `yaml:"additional_funds" json:"additional_funds"`
	Assumptions Assumptions      `yaml:"assumptions" json:"assumptions"`
	Scenarios   []Scenario       `yaml:"scenarios" json:"scenarios"`
}
