package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// CalculateAdditionalFunds totals the lump-sum reserves wanted on top of the
// retirement corpus. Per-child targets multiply out; the parental medical
// reserve comes straight from the household profile.
func CalculateAdditionalFunds(targets domain.FundTargets, children int, parentalMedical decimal.Decimal) domain.AdditionalFunds {
	count := decimal.NewFromInt(int64(children))

	out := domain.AdditionalFunds{
		EmergencyFund:   targets.EmergencyFund,
		HigherEducation: targets.HigherEducationPerChild.Mul(count),
		Wedding:         targets.WeddingPerChild.Mul(count),
		ParentalMedical: parentalMedical,
	}
	out.Total = out.EmergencyFund.
		Add(out.HigherEducation).
		Add(out.Wedding).
		Add(out.ParentalMedical)
	return out
}
