package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Print the normalized lines of a résumé file",
	Long:  "Extracts text from a résumé file and prints one normalized line per row, prefixed with its index.",
	RunE:  runNormalize,
}

var normalizeInput string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInput, "in", "i", "", "Path to résumé file (required)")

	if err := normalizeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	text, _, err := ingestion.ReadDocument(cmd.Context(), normalizeInput)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", normalizeInput, err)
	}

	for _, line := range ingestion.NormalizeLines(text) {
		_, _ = fmt.Fprintf(os.Stdout, "%4d  %s\n", line.Index, line.Text)
	}
	return nil
}
