package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "RetirementAge", "YearsToRetirement", "CityTier", "OwnHouse",
		"CurrentMonthlyExpenses", "RetirementBaseMonthly", "FutureMonthlyExpenses",
		"RequiredCorpus", "CorpusFutureValue", "RemainingCorpus", "Surplus",
		"ConservativeSIP", "ModerateSIP", "AggressiveSIP",
		"AdditionalFunds", "GrandTotalRequired", "CorpusAtRetirement",
		"CorpusDurationYears", "DurationCapped",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			intToString(sc.RetirementAge),
			intToString(sc.YearsToRetirement),
			intToString(int(sc.EffectiveCityTier)),
			boolToString(sc.EffectiveOwnHouse),
			sc.CurrentExpenses.TotalMonthly.StringFixed(2),
			sc.RetirementBaseMonthly.StringFixed(2),
			sc.FutureExpenses.TotalMonthly.StringFixed(2),
			sc.RequiredCorpus.StringFixed(2),
			sc.CorpusFutureValue.StringFixed(2),
			sc.RemainingCorpus.StringFixed(2),
			sc.Surplus.StringFixed(2),
			sipMonthly(&sc, domain.ProfileConservative).StringFixed(2),
			sipMonthly(&sc, domain.ProfileModerate).StringFixed(2),
			sipMonthly(&sc, domain.ProfileAggressive).StringFixed(2),
			sc.AdditionalFunds.Total.StringFixed(2),
			sc.GrandTotalRequired.StringFixed(2),
			sc.CorpusAtRetirement.StringFixed(2),
			intToString(sc.CorpusDurationYears),
			boolToString(sc.DurationCapped),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
