package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidWithdrawalRate is returned when a withdrawal rate cannot fund a
// perpetuity, i.e. it is zero or negative.
var ErrInvalidWithdrawalRate = errors.New("withdrawal rate must be positive")

var monthsPerYear = decimal.NewFromInt(12)

// CalculateCorpusNeeded sizes the retirement corpus so that withdrawing at
// the given rate covers a year of expenses: annual expenses divided by the
// rate. A 5% rate therefore demands 20 years of expenses up front.
func CalculateCorpusNeeded(monthlyExpenses, withdrawalRate decimal.Decimal) (decimal.Decimal, error) {
	if withdrawalRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidWithdrawalRate, withdrawalRate)
	}
	return monthlyExpenses.Mul(monthsPerYear).Div(withdrawalRate), nil
}

// FutureValue grows a lump sum at an annual rate over whole years.
func FutureValue(principal, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return principal
	}
	factor := decimal.NewFromInt(1).Add(annualRate).Pow(decimal.NewFromInt(int64(years)))
	return principal.Mul(factor)
}

// RemainingCorpus splits the gap between what is required and what current
// savings will have become. Exactly one of the results is nonzero unless
// they land equal.
func RemainingCorpus(required, futureValue decimal.Decimal) (remaining, surplus decimal.Decimal) {
	if futureValue.GreaterThanOrEqual(required) {
		return decimal.Zero, futureValue.Sub(required)
	}
	return required.Sub(futureValue), decimal.Zero
}
