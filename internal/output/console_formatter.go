package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Current Corpus: %s\n", FormatINR(results.CurrentCorpus))
	fmt.Fprintln(&buf)
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		duration := intToString(sc.CorpusDurationYears)
		if sc.DurationCapped {
			duration += "+"
		}
		fmt.Fprintf(&buf, "%s: Retire@%d Corpus=%s SIP=%s Duration=%s years\n",
			sc.Name,
			sc.RetirementAge,
			FormatCompactINR(sc.GrandTotalRequired),
			FormatINR(sc.AggressiveSIP()),
			duration,
		)
		fmt.Fprintf(&buf, "  MonthlyNow=%s MonthlyAtRetirement=%s Coverage=%s\n",
			FormatINR(sc.CurrentExpenses.TotalMonthly),
			FormatINR(sc.FutureExpenses.TotalMonthly),
			FormatPercentage(sc.CoveragePercent()),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (SIP %s, funded %s)\n",
			rec.ScenarioName, FormatINR(rec.MonthlySIP), FormatPercentage(rec.Coverage))
	}
	return buf.Bytes(), nil
}
