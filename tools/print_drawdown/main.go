package main

import (
	"context"
	"fmt"
	"os"

	"github.com/salariedindividual/retirement-calculator/internal/calculation"
	"github.com/salariedindividual/retirement-calculator/internal/config"
)

// Prints the first scenario's drawdown ledger as CSV for eyeballing the
// year-by-year withdrawal math against a spreadsheet.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_drawdown <config-file>")
		return
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	engine := calculation.NewPlanningEngine()
	results, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	scenario := results.Scenarios[0]
	fmt.Printf("# scenario %q: corpus at retirement %s, lasts %d years (capped=%v)\n",
		scenario.Name, scenario.CorpusAtRetirement.StringFixed(0),
		scenario.CorpusDurationYears, scenario.DurationCapped)
	fmt.Println("year,opening,growth,withdrawal,closing")
	for _, row := range scenario.Drawdown {
		fmt.Printf("%d,%s,%s,%s,%s\n",
			row.Year,
			row.OpeningBalance.StringFixed(2),
			row.Growth.StringFixed(2),
			row.Withdrawal.StringFixed(2),
			row.ClosingBalance.StringFixed(2),
		)
	}
}
