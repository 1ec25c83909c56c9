package main

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every analysis and publish if configured",
	Long: `Run the numeric, vector, and categorical analyses in sequence and,
when a publish target is configured, upload the output directory to the
S3-compatible endpoint.`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func runAll(cmd *cobra.Command, _ []string) error {
	s, err := newSession(nil)
	if err != nil {
		return err
	}
	res, err := s.RunAll(cmd.Context())
	if err != nil {
		return err
	}
	printResult(cmd, s, res)
	return nil
}
