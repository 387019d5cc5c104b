package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw drawdown ledger per scenario and year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "OpeningBalance", "Growth", "Withdrawal", "ClosingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, yr := range sc.Drawdown {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				yr.OpeningBalance.StringFixed(2),
				yr.Growth.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.ClosingBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
