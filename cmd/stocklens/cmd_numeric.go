package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stocklens"
	"stocklens/config"
	"stocklens/report"
)

var numericFlags struct {
	input string
}

var numericCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Analyze the numeric inventory CSV",
	Long: `Load the numeric inventory CSV (ProductID, Stock, ReorderLevel, Price),
compute the stock and price statistics with reorder flags, and export
numeric_report.csv, below_reorder.csv, and the numeric charts.`,
	Args: cobra.NoArgs,
	RunE: runNumeric,
}

func init() {
	numericCmd.Flags().StringVar(&numericFlags.input, "input", "", "Numeric inventory CSV (overrides config)")
}

func runNumeric(cmd *cobra.Command, _ []string) error {
	s, err := newSession(func(c *config.Config) {
		if numericFlags.input != "" {
			c.NumericCSV = numericFlags.input
		}
	})
	if err != nil {
		return err
	}
	res, err := s.RunNumeric(cmd.Context())
	if err != nil {
		return err
	}
	printResult(cmd, s, res)
	return nil
}

// printResult renders every produced table and lists the written
// artifacts.
func printResult(cmd *cobra.Command, s *stocklens.Session, res *stocklens.RunResult) {
	for _, t := range res.Tables {
		fmt.Fprintln(cmd.OutOrStdout(), report.Render(t))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Artifacts in %s:\n", s.Config().OutputDir)
	for _, a := range res.Artifacts {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", a)
	}
}
