package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stocklens"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long:  "Present the interactive menu: numeric analysis, vector analysis,\ncategory analysis, run all, exit.",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

const banner = `
============================================================
                 STOCKLENS INVENTORY ANALYSIS
============================================================`

func runMenu(cmd *cobra.Command, _ []string) error {
	s, err := newSession(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, banner)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintln(out, "\nMAIN MENU:")
		fmt.Fprintln(out, "1. Process numeric data")
		fmt.Fprintln(out, "2. Process vector data")
		fmt.Fprintln(out, "3. Process category data")
		fmt.Fprintln(out, "4. Run all")
		fmt.Fprintln(out, "5. Exit")
		fmt.Fprint(out, "Choice (1-5): ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		var res *stocklens.RunResult
		var runErr error
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			res, runErr = s.RunNumeric(cmd.Context())
		case "2":
			res, runErr = s.RunVector(cmd.Context())
		case "3":
			res, runErr = s.RunCategory(cmd.Context())
		case "4":
			res, runErr = s.RunAll(cmd.Context())
		case "5":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, "Enter a number 1-5.")
			continue
		}

		if runErr != nil {
			fmt.Fprintf(out, "FAILED: %v\n", runErr)
			continue
		}
		printResult(cmd, s, res)
	}
}
