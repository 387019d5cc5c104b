package output

import (
	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/pkg/inr"
)

// FormatINR formats an amount in the standard rupee display form.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatINR(amount decimal.Decimal) string { return inr.Format(amount) }

// FormatCompactINR renders large amounts in lakh or crore units.
func FormatCompactINR(amount decimal.Decimal) string { return inr.FormatCompact(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

var decimalHundred = decimal.NewFromInt(100)
