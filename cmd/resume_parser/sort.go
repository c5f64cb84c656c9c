package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/dates"
	"github.com/jonathan/resume-parser/internal/experience"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort an experience bank by recency",
	Long: `Loads an experience bank JSON file (free-text date ranges or legacy
{start, end, is_present} objects), validates it and writes it back with every
list ordered most recent first. Entries without an ID are assigned one.`,
	RunE: runSort,
}

var (
	sortInputFile  string
	sortOutputFile string
)

func init() {
	sortCmd.Flags().StringVarP(&sortInputFile, "in", "i", "", "Path to input experience bank JSON file (required)")
	sortCmd.Flags().StringVarP(&sortOutputFile, "out", "o", "", "Path to output sorted experience bank JSON file (required)")

	if err := sortCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := sortCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(sortCmd)
}

func runSort(_ *cobra.Command, _ []string) error {
	bank, err := experience.LoadBank(sortInputFile, dates.NewService(app.vocab))
	if err != nil {
		return fmt.Errorf("failed to load experience bank: %w", err)
	}

	snapshot := bank.Snapshot()
	if err := writeJSON(sortOutputFile, snapshot); err != nil {
		return err
	}

	if app.cfg.Verbose {
		app.printer.PrintBank(snapshot)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully sorted experience bank\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", sortOutputFile)
	return nil
}
