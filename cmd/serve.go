package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salariedindividual/retirement-calculator/internal/calculation"
	"github.com/salariedindividual/retirement-calculator/internal/handler"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	h := handler.New()
	h.SetLogger(calculation.NewVerboseLogger(flagVerbose))
	return h.Serve(flagAddr)
}
