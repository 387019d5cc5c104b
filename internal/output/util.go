package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// sipMonthly returns the monthly SIP for the named profile, zero when absent.
func sipMonthly(sc *domain.ScenarioSummary, profile string) decimal.Decimal {
	for _, plan := range sc.SIPPlans {
		if plan.Profile == profile {
			return plan.Monthly
		}
	}
	return decimal.Zero
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
