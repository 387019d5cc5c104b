package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
	"github.com/salariedindividual/retirement-calculator/pkg/inr"
)

// ConsoleVerboseFormatter renders the full detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	banner := strings.Repeat("=", 80)
	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf, "RETIREMENT CORPUS & SIP ANALYSIS")
	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "CURRENT POSITION")
	fmt.Fprintln(&buf, "================")
	fmt.Fprintf(&buf, "Existing Retirement Corpus: %s (%s)\n",
		FormatINR(results.CurrentCorpus), FormatCompactINR(results.CurrentCorpus))
	if results.EMIAnalysis != nil {
		fmt.Fprintf(&buf, "Outstanding Loan EMI:       %s/month for %d more years\n",
			FormatINR(results.EMIAnalysis.MonthlyEMI), results.EMIAnalysis.YearsRemaining)
	}
	fmt.Fprintln(&buf)

	writeExpenseComparison(&buf, results)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "Retirement Age:   %d (%d years away)\n", scenario.RetirementAge, scenario.YearsToRetirement)
		fmt.Fprintf(&buf, "City Tier:        %s\n", scenario.EffectiveCityTier.Label())
		fmt.Fprintf(&buf, "Own House:        %s\n", yesNo(scenario.EffectiveOwnHouse))
		fmt.Fprintf(&buf, "Expected Return:  %s\n", FormatPercentage(scenario.ExpectedReturn.Mul(decimalHundred)))
		fmt.Fprintln(&buf)

		writeCurrentExpenses(&buf, &scenario)
		writeFutureExpenses(&buf, &scenario)
		writeCorpusRequirement(&buf, &scenario)
		writeSIPPlans(&buf, &scenario)
		writeDrawdown(&buf, &scenario)
		writeAccumulation(&buf, &scenario)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Recommended scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Monthly SIP (aggressive profile): %s\n", FormatINR(rec.MonthlySIP))
		fmt.Fprintf(&buf, "Corpus funded so far: %s\n", FormatPercentage(rec.Coverage))
		if len(results.Recommendations) > 0 {
			fmt.Fprintln(&buf)
			for _, r := range results.Recommendations {
				fmt.Fprintf(&buf, "• %s\n", r)
			}
		}
	}

	return buf.Bytes(), nil
}

func writeCurrentExpenses(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	fmt.Fprintln(buf, "MONTHLY EXPENSES TODAY:")
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	for _, cat := range domain.Categories() {
		amount, ok := sc.CurrentExpenses.Categories[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(buf, "  %-26s %15s\n", cat.Title()+":", FormatINR(amount))
	}
	if sc.CurrentExpenses.DebtService.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  %-26s %15s\n", "Loan EMI:", FormatINR(sc.CurrentExpenses.DebtService))
	}
	if sc.CurrentExpenses.DependentCare.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  %-26s %15s\n", "Parental Support:", FormatINR(sc.CurrentExpenses.DependentCare))
	}
	fmt.Fprintf(buf, "  %-26s %15s\n", "TOTAL:", FormatINR(sc.CurrentExpenses.TotalMonthly))
	fmt.Fprintln(buf)
}

func writeFutureExpenses(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	fmt.Fprintf(buf, "EXPENSES AT RETIREMENT (%d years out):\n", sc.FutureExpenses.HorizonYears)
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	fmt.Fprintf(buf, "  %-26s %15s\n", "Base (today's prices):", FormatINR(sc.FutureExpenses.CurrentMonthly))
	fmt.Fprintf(buf, "  %-26s %15s\n", "General Spending:", FormatINR(sc.FutureExpenses.General))
	fmt.Fprintf(buf, "  %-26s %15s\n", "Healthcare:", FormatINR(sc.FutureExpenses.Healthcare))
	fmt.Fprintf(buf, "  %-26s %15s\n", "Education:", FormatINR(sc.FutureExpenses.Education))
	fmt.Fprintf(buf, "  %-26s %15s\n", "TOTAL MONTHLY:", FormatINR(sc.FutureExpenses.TotalMonthly))
	fmt.Fprintf(buf, "  %-26s %15s\n", "Expense Growth:", "+"+FormatPercentage(sc.FutureExpenses.PercentIncrease()))
	if sc.EMIContinues {
		fmt.Fprintln(buf, "  Note: loan EMI is still running at retirement and is included above.")
	}
	fmt.Fprintln(buf)
}

func writeCorpusRequirement(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	fmt.Fprintln(buf, "CORPUS REQUIREMENT:")
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "Required Corpus:", FormatINR(sc.RequiredCorpus), FormatCompactINR(sc.RequiredCorpus))
	fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "Savings Grow To:", FormatINR(sc.CorpusFutureValue), FormatCompactINR(sc.CorpusFutureValue))
	if sc.Surplus.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "Surplus at Retirement:", FormatINR(sc.Surplus), FormatCompactINR(sc.Surplus))
	} else {
		fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "Shortfall to Build:", FormatINR(sc.RemainingCorpus), FormatCompactINR(sc.RemainingCorpus))
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "  ADDITIONAL FUNDS:")
	fmt.Fprintf(buf, "  %-26s %18s\n", "  Emergency Fund:", FormatINR(sc.AdditionalFunds.EmergencyFund))
	fmt.Fprintf(buf, "  %-26s %18s\n", "  Higher Education:", FormatINR(sc.AdditionalFunds.HigherEducation))
	fmt.Fprintf(buf, "  %-26s %18s\n", "  Weddings:", FormatINR(sc.AdditionalFunds.Wedding))
	if sc.AdditionalFunds.ParentalMedical.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  %-26s %18s\n", "  Parental Medical:", FormatINR(sc.AdditionalFunds.ParentalMedical))
	}
	fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "  Subtotal:", FormatINR(sc.AdditionalFunds.Total), FormatCompactINR(sc.AdditionalFunds.Total))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "GRAND TOTAL REQUIRED:", FormatINR(sc.GrandTotalRequired), FormatCompactINR(sc.GrandTotalRequired))
	fmt.Fprintln(buf)
}

func writeSIPPlans(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	fmt.Fprintln(buf, "MONTHLY SIP REQUIRED:")
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	for _, plan := range sc.SIPPlans {
		label := fmt.Sprintf("%s (%.1f%% return):", plan.Profile, plan.AnnualReturn.Mul(decimalHundred).InexactFloat64())
		fmt.Fprintf(buf, "  %-26s %15s\n", label, FormatINR(plan.Monthly))
	}
	fmt.Fprintln(buf)
}

func writeDrawdown(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	fmt.Fprintln(buf, "CORPUS LONGEVITY:")
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	fmt.Fprintf(buf, "  %-26s %18s (%s)\n", "Corpus at Retirement:", FormatINR(sc.CorpusAtRetirement), FormatCompactINR(sc.CorpusAtRetirement))
	if sc.DurationCapped {
		fmt.Fprintf(buf, "  %-26s %d+ years (still funded at the projection cap)\n", "Projected Duration:", sc.CorpusDurationYears)
	} else {
		fmt.Fprintf(buf, "  %-26s %d years\n", "Projected Duration:", sc.CorpusDurationYears)
	}
	if len(sc.Drawdown) == 0 {
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %4s %18s %16s %16s %18s\n", "YEAR", "OPENING", "GROWTH", "WITHDRAWAL", "CLOSING")
	preview := sc.Drawdown
	truncated := false
	if len(preview) > 5 {
		preview = preview[:5]
		truncated = true
	}
	for _, yr := range preview {
		fmt.Fprintf(buf, "  %4d %18s %16s %16s %18s\n",
			yr.Year, FormatINR(yr.OpeningBalance), FormatINR(yr.Growth), FormatINR(yr.Withdrawal), FormatINR(yr.ClosingBalance))
	}
	if truncated {
		last := sc.Drawdown[len(sc.Drawdown)-1]
		fmt.Fprintf(buf, "  %4s\n", "...")
		fmt.Fprintf(buf, "  %4d %18s %16s %16s %18s\n",
			last.Year, FormatINR(last.OpeningBalance), FormatINR(last.Growth), FormatINR(last.Withdrawal), FormatINR(last.ClosingBalance))
	}
	fmt.Fprintln(buf)
}

func writeAccumulation(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	if len(sc.Accumulation) == 0 {
		return
	}
	fmt.Fprintln(buf, "CORPUS BUILD-UP (aggressive SIP):")
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	fmt.Fprintf(buf, "  %4s %5s %18s %18s %18s\n", "YEAR", "AGE", "EXISTING CORPUS", "SIP VALUE", "TOTAL")
	for i, row := range sc.Accumulation {
		if i != 0 && i != len(sc.Accumulation)-1 && row.Year%5 != 0 {
			continue
		}
		fmt.Fprintf(buf, "  %4d %5d %18s %18s %18s\n",
			row.Year, row.Age, FormatINR(row.ExistingCorpus), FormatINR(row.SIPValue), FormatINR(row.Total))
	}
	fmt.Fprintln(buf)
}

// writeExpenseComparison contrasts today's outgo with the retirement-base outgo per scenario.
func writeExpenseComparison(buf *bytes.Buffer, results *domain.PlanComparison) {
	banner := strings.Repeat("=", 80)
	fmt.Fprintln(buf, banner)
	fmt.Fprintln(buf, "EXPENSE VALIDATION: TODAY vs AT RETIREMENT")
	fmt.Fprintln(buf, banner)
	for i, scenario := range results.Scenarios {
		title := fmt.Sprintf("SCENARIO %d: %s", i+1, scenario.Name)
		fmt.Fprintf(buf, "\n%s\n", title)
		fmt.Fprintln(buf, strings.Repeat("=", len(title)))
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", "COMPONENT", "TODAY", "RETIREMENT", "DIFFERENCE")
		fmt.Fprintln(buf, strings.Repeat("-", 80))

		emiAtRetirement := decimal.Zero
		if scenario.EMIContinues {
			emiAtRetirement = scenario.CurrentExpenses.DebtService
		}
		categoryTotal := scenario.CurrentExpenses.CategoryTotal()

		fmt.Fprintln(buf, "MONTHLY OUTGO (today's prices):")
		cmpLine(buf, "  Household Spending", categoryTotal, categoryTotal)
		cmpLine(buf, "  Loan EMI", scenario.CurrentExpenses.DebtService, emiAtRetirement)
		cmpLine(buf, "  Parental Support", scenario.CurrentExpenses.DependentCare, scenario.CurrentExpenses.DependentCare)
		fmt.Fprintln(buf, strings.Repeat("-", 80))
		cmpLine(buf, "TOTAL MONTHLY", scenario.CurrentExpenses.TotalMonthly, scenario.RetirementBaseMonthly)
		fmt.Fprintln(buf)

		annualBase := inr.FromDecimal(scenario.RetirementBaseMonthly).Annual().Decimal
		annualFuture := inr.FromDecimal(scenario.FutureExpenses.TotalMonthly).Annual().Decimal
		fmt.Fprintln(buf, "INFLATION IMPACT:")
		cmpLine(buf, "  Monthly Expenses", scenario.RetirementBaseMonthly, scenario.FutureExpenses.TotalMonthly)
		cmpLine(buf, "  Annual Expenses", annualBase, annualFuture)
		fmt.Fprintln(buf, strings.Repeat("=", 80))

		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "KEY INSIGHTS:")
		if scenario.CurrentExpenses.DebtService.GreaterThan(decimal.Zero) {
			if scenario.EMIContinues {
				fmt.Fprintf(buf, "• Loan EMI of %s continues into retirement and inflates the corpus target\n",
					FormatINR(scenario.CurrentExpenses.DebtService))
			} else {
				fmt.Fprintf(buf, "• Loan EMI of %s ends before retirement and is excluded from the corpus target\n",
					FormatINR(scenario.CurrentExpenses.DebtService))
			}
		}
		fmt.Fprintf(buf, "• Monthly expenses grow %s over %d years of inflation\n",
			FormatPercentage(scenario.FutureExpenses.PercentIncrease()), scenario.FutureExpenses.HorizonYears)
		fmt.Fprintf(buf, "• Every retirement year must fund %s of spending\n", FormatINR(annualFuture))
		netDiff := scenario.FutureExpenses.TotalMonthly.Sub(scenario.RetirementBaseMonthly)
		fmt.Fprintf(buf, "\nNet Effect: +%s monthly (+%s)\n",
			FormatINR(netDiff), FormatPercentage(scenario.FutureExpenses.PercentIncrease()))
		fmt.Fprintln(buf)
	}
}

func cmpLine(buf *bytes.Buffer, label string, today, retirement decimal.Decimal) {
	diff := retirement.Sub(today)
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", label, FormatINR(today), FormatINR(retirement), FormatINR(diff))
}
