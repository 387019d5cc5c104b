package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salariedindividual/retirement-calculator/internal/config"
	"github.com/salariedindividual/retirement-calculator/internal/output"
)

const defaultExamplePath = "example_config.yaml"

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	path := defaultExamplePath
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	if err := output.SaveConfiguration(cfg, path); err != nil {
		return fmt.Errorf("failed to write example configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
	return nil
}
