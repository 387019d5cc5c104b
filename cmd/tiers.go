package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/salariedindividual/retirement-calculator/internal/calculation"
	"github.com/salariedindividual/retirement-calculator/internal/domain"
	"github.com/salariedindividual/retirement-calculator/pkg/inr"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the built-in city tier expense baselines",
	RunE:  runTiers,
}

func init() {
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "Category")
	for _, tier := range domain.Tiers() {
		fmt.Fprintf(w, "\t%s", tier.Label())
	}
	fmt.Fprintln(w)

	baselines := make(map[domain.CityTier]domain.ExpenseProfile, len(domain.Tiers()))
	for _, tier := range domain.Tiers() {
		baseline, err := calculation.BaselineExpenses(tier)
		if err != nil {
			return err
		}
		baselines[tier] = baseline
	}

	for _, category := range domain.Categories() {
		fmt.Fprint(w, category)
		for _, tier := range domain.Tiers() {
			fmt.Fprintf(w, "\t%s", inr.Format(baselines[tier][category]))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "Total")
	for _, tier := range domain.Tiers() {
		fmt.Fprintf(w, "\t%s", inr.Format(baselines[tier].Total()))
	}
	fmt.Fprintln(w)

	return w.Flush()
}
