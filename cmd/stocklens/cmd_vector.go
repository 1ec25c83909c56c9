package main

import (
	"github.com/spf13/cobra"

	"stocklens/config"
)

var vectorFlags struct {
	input string
}

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Analyze the labeled vector dataset",
	Long: `Load the vector dataset (JSON, optionally .gz or .lz4 compressed),
compute pairwise geometry (dot product, magnitudes, projections, angles),
joint and conditional probabilities, and label combinatorics, and export
them as CSV reports.`,
	Args: cobra.NoArgs,
	RunE: runVector,
}

func init() {
	vectorCmd.Flags().StringVar(&vectorFlags.input, "input", "", "Vector dataset file (overrides config)")
}

func runVector(cmd *cobra.Command, _ []string) error {
	s, err := newSession(func(c *config.Config) {
		if vectorFlags.input != "" {
			c.VectorFile = vectorFlags.input
		}
	})
	if err != nil {
		return err
	}
	res, err := s.RunVector(cmd.Context())
	if err != nil {
		return err
	}
	printResult(cmd, s, res)
	return nil
}
