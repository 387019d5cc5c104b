package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// DrawdownExpenseGrowth is the annual growth applied to retirement spending
// inside the depletion projection. It is deliberately a fixed rate, separate
// from the configured general inflation: the drawdown answers "how long does
// the money last under standard assumptions", not "replay my inflation view".
var DrawdownExpenseGrowth = decimal.NewFromFloat(0.07)

// ProjectCorpusDrawdown plays the corpus forward through retirement one year
// at a time: grow at the investment return, then withdraw the larger of the
// inflated expense need and the rate-based floor. The ledger ends when the
// corpus is exhausted or after maxYears, whichever comes first. A non-positive
// maxYears means domain.DefaultMaxDrawdownYears; a non-positive starting
// corpus yields an empty ledger.
func ProjectCorpusDrawdown(initialCorpus, annualExpenses, expenseGrowthRate, withdrawalRate, investmentReturn decimal.Decimal, maxYears int) []domain.DrawdownYear {
	if maxYears <= 0 {
		maxYears = domain.DefaultMaxDrawdownYears
	}

	one := decimal.NewFromInt(1)
	expenseFactor := one
	expenseStep := one.Add(expenseGrowthRate)

	corpus := initialCorpus
	ledger := make([]domain.DrawdownYear, 0, maxYears)

	for year := 1; corpus.GreaterThan(decimal.Zero) && year <= maxYears; year++ {
		opening := corpus
		growth := corpus.Mul(investmentReturn)
		corpus = corpus.Add(growth)

		// The rate floor applies to the grown balance, so a large corpus
		// keeps withdrawing at least its sustainable rate even when
		// expenses are tiny.
		expenseNeed := annualExpenses.Mul(expenseFactor)
		floor := corpus.Mul(withdrawalRate)
		withdrawal := decimal.Max(expenseNeed, floor)

		corpus = corpus.Sub(withdrawal)
		expenseFactor = expenseFactor.Mul(expenseStep)

		ledger = append(ledger, domain.DrawdownYear{
			Year:           year,
			OpeningBalance: opening,
			Growth:         growth,
			Withdrawal:     withdrawal,
			ClosingBalance: corpus,
		})

		if corpus.LessThanOrEqual(decimal.Zero) {
			break
		}
	}
	return ledger
}

// CalculateCorpusDuration reports how many years the corpus sustains
// withdrawals, capped at maxYears.
func CalculateCorpusDuration(initialCorpus, annualExpenses, expenseGrowthRate, withdrawalRate, investmentReturn decimal.Decimal, maxYears int) int {
	return len(ProjectCorpusDrawdown(initialCorpus, annualExpenses, expenseGrowthRate, withdrawalRate, investmentReturn, maxYears))
}

// DrawdownCapped distinguishes a ledger that stopped at the year cap with
// money left from one that genuinely ran dry.
func DrawdownCapped(ledger []domain.DrawdownYear, maxYears int) bool {
	if maxYears <= 0 {
		maxYears = domain.DefaultMaxDrawdownYears
	}
	if len(ledger) < maxYears {
		return false
	}
	return ledger[len(ledger)-1].ClosingBalance.GreaterThan(decimal.Zero)
}
