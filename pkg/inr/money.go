// Package inr carries Indian Rupee amounts with financial precision and
// renders them in the units Indian savers actually plan in (lakh, crore).
package inr

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Code is the ISO 4217 currency code for the Indian Rupee.
const Code = "INR"

var (
	// Lakh is 1,00,000 rupees.
	Lakh = decimal.NewFromInt(100_000)
	// Crore is 1,00,00,000 rupees.
	Crore = decimal.NewFromInt(10_000_000)

	twelve = decimal.NewFromInt(12)
)

// Money represents a rupee amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal amount.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString creates a Money from its string form.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to whole paise.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to its yearly equivalent.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to its monthly equivalent.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan reports whether this amount exceeds another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual reports whether this amount is at least another.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan reports whether this amount is below another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual reports whether this amount is at most another.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal reports whether two amounts are equal.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Min returns the smaller of two amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// String renders the amount in the standard INR display form, e.g. ₹69,500.00.
func (m Money) String() string {
	cur := money.GetCurrency(Code)
	minor := m.Decimal.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// Format renders a bare decimal amount in the standard INR display form.
func Format(amount decimal.Decimal) string {
	return Money{amount}.String()
}

// FormatLakh renders the amount in lakhs, e.g. ₹6 L.
func FormatLakh(amount decimal.Decimal) string {
	return "₹" + amount.Div(Lakh).Round(2).String() + " L"
}

// FormatCrore renders the amount in crores, e.g. ₹3.65 Cr.
func FormatCrore(amount decimal.Decimal) string {
	return "₹" + amount.Div(Crore).Round(2).String() + " Cr"
}

// FormatCompact picks the most readable unit for the magnitude.
func FormatCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(Crore):
		return FormatCrore(amount)
	case abs.GreaterThanOrEqual(Lakh):
		return FormatLakh(amount)
	default:
		return Format(amount)
	}
}
