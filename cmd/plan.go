package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salariedindividual/retirement-calculator/internal/output"
)

var flagSave bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the retirement plan for a configuration file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&flagSave, "save", false, "Also write a timestamped report file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	engine := newEngine()
	results, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	if err := output.PrintReport(results, flagFormat); err != nil {
		return err
	}

	if flagSave {
		filename, err := output.GenerateReport(results, flagFormat)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", filename)
	}

	return nil
}
