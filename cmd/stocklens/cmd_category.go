package main

import (
	"github.com/spf13/cobra"

	"stocklens/config"
)

var categoryFlags struct {
	input string
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Analyze the categorical inventory CSV",
	Long: `Load the categorical inventory CSV (ProductID, ProductName, Category,
HazardClass, Supplier) and export item counts grouped by category,
hazard class, and supplier.`,
	Args: cobra.NoArgs,
	RunE: runCategory,
}

func init() {
	categoryCmd.Flags().StringVar(&categoryFlags.input, "input", "", "Categorical inventory CSV (overrides config)")
}

func runCategory(cmd *cobra.Command, _ []string) error {
	s, err := newSession(func(c *config.Config) {
		if categoryFlags.input != "" {
			c.CategoryCSV = categoryFlags.input
		}
	})
	if err != nil {
		return err
	}
	res, err := s.RunCategory(cmd.Context())
	if err != nil {
		return err
	}
	printResult(cmd, s, res)
	return nil
}
