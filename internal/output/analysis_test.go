package output

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

func summaryWithSIP(name string, aggressive int64, duration int) domain.ScenarioSummary {
	return domain.ScenarioSummary{
		Name: name,
		SIPPlans: []domain.SIPPlan{
			{Profile: domain.ProfileAggressive, AnnualReturn: decimal.NewFromFloat(0.12), Monthly: decimal.NewFromInt(aggressive)},
		},
		RequiredCorpus:      decimal.NewFromInt(40000000),
		CorpusFutureValue:   decimal.NewFromInt(10000000),
		CorpusDurationYears: duration,
	}
}

func TestAnalyzeScenarios_SelectsLowestAggressiveSIP(t *testing.T) {
	comparison := &domain.PlanComparison{
		Scenarios: []domain.ScenarioSummary{
			summaryWithSIP("Scenario A", 30000, 30),
			summaryWithSIP("Scenario B", 20000, 35),
		},
	}

	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Scenario B" {
		t.Fatalf("expected Scenario B, got %q", rec.ScenarioName)
	}
	if !rec.MonthlySIP.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected SIP 20000, got %s", rec.MonthlySIP)
	}
	if !rec.Coverage.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25%% coverage, got %s", rec.Coverage)
	}
	if rec.DurationYears != 35 {
		t.Fatalf("expected duration 35, got %d", rec.DurationYears)
	}
}

func TestAnalyzeScenarios_TieBreaksOnDuration(t *testing.T) {
	comparison := &domain.PlanComparison{
		Scenarios: []domain.ScenarioSummary{
			summaryWithSIP("Shorter", 20000, 28),
			summaryWithSIP("Longer", 20000, 50),
		},
	}

	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Longer" {
		t.Fatalf("tie should prefer the longer-lasting corpus, got %q", rec.ScenarioName)
	}
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	rec := AnalyzeScenarios(&domain.PlanComparison{})
	if rec.ScenarioName != "" {
		t.Fatalf("expected empty recommendation, got %q", rec.ScenarioName)
	}
}
