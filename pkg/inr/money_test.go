package inr

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := New(12.345)
	if got := m.String(); got != "₹12.35" {
		t.Fatalf("New display mismatch: got %s", got)
	}

	d := stddec.NewFromFloat(10.125)
	m2 := FromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("FromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := FromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m3.String(); got != "₹123.45" {
		t.Fatalf("FromString display mismatch: got %s", got)
	}

	if _, err := FromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
	}
	for _, c := range cases {
		m, _ := FromString(c.in)
		if got := m.Round().Decimal.String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	m := New(100)
	if got := m.Annual().String(); got != "₹1,200.00" {
		t.Fatalf("Annual got %s", got)
	}
	if !m.Annual().Monthly().Equal(m) {
		t.Fatalf("Monthly after Annual got %s", m.Annual().Monthly())
	}
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := New(10.10)
	b := New(5.05)
	if got := a.Add(b).String(); got != "₹15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "₹5.05" {
		t.Fatalf("Sub got %s", got)
	}

	factor := stddec.NewFromFloat(2.5)
	if got := a.Mul(factor).String(); got != "₹25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.Div(stddec.NewFromInt(2)).String(); got != "₹5.05" {
		t.Fatalf("Div got %s", got)
	}

	if !a.GreaterThan(b) || b.GreaterThan(a) {
		t.Fatalf("GreaterThan misordered %s vs %s", a, b)
	}
	if !b.LessThan(a) || a.LessThan(b) {
		t.Fatalf("LessThan misordered %s vs %s", a, b)
	}
	if !a.GreaterThanOrEqual(a) || !a.LessThanOrEqual(a) {
		t.Fatalf("or-equal comparisons should hold for an amount against itself")
	}

	if got := Min(a, b); !got.Equal(b) {
		t.Fatalf("Min got %s", got)
	}
	if got := Max(a, b); !got.Equal(a) {
		t.Fatalf("Max got %s", got)
	}
}

func TestFormatGroupsDigits(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{4500, "₹4,500.00"},
		{69500, "₹69,500.00"},
		{24000000, "₹24,000,000.00"},
	}
	for _, c := range cases {
		if got := Format(stddec.NewFromInt(c.in)); got != c.want {
			t.Fatalf("Format(%d) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestFormatLakhCrore(t *testing.T) {
	if got := FormatLakh(stddec.NewFromInt(600000)); got != "₹6 L" {
		t.Fatalf("FormatLakh got %s", got)
	}
	if got := FormatLakh(stddec.NewFromInt(250000)); got != "₹2.5 L" {
		t.Fatalf("FormatLakh fractional got %s", got)
	}
	if got := FormatCrore(stddec.NewFromInt(36500000)); got != "₹3.65 Cr" {
		t.Fatalf("FormatCrore got %s", got)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{4500, "₹4,500.00"},
		{600000, "₹6 L"},
		{24000000, "₹2.4 Cr"},
		{-200000, "₹-2 L"},
	}
	for _, c := range cases {
		if got := FormatCompact(stddec.NewFromInt(c.in)); got != c.want {
			t.Fatalf("FormatCompact(%d) got %s want %s", c.in, got, c.want)
		}
	}
}
