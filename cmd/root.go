package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salariedindividual/retirement-calculator/internal/calculation"
	"github.com/salariedindividual/retirement-calculator/internal/config"
	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "retirement-calculator",
	Short: "Retirement corpus planner for salaried individuals",
	Long: "Project household expenses to retirement, size the corpus a safe " +
		"withdrawal rate demands, and solve the monthly SIP that closes the gap.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log calculation steps to stderr")
}

// loadConfiguration is the shared config loading path used by commands that
// need an input file.
func loadConfiguration() (*domain.Configuration, error) {
	if flagConfig == "" {
		return nil, fmt.Errorf("a configuration file is required (use --config)")
	}
	parser := config.NewInputParser()
	return parser.LoadFromFile(flagConfig)
}

// newEngine builds a planning engine with logging wired to --verbose.
func newEngine() *calculation.PlanningEngine {
	engine := calculation.NewPlanningEngine()
	if flagVerbose {
		engine.Debug = true
		engine.SetLogger(calculation.NewVerboseLogger(true))
	}
	return engine
}
