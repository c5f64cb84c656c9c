// Package main provides the entry point for the resume_parser CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Résumé text parser",
	Long: `resume_parser turns résumé text (PDF, HTML or plain text) into structured JSON:
personal fields, dated experience and education entries, skills and languages.

Configuration can be loaded from a JSON file using --config and overridden by
RESUME_PARSER_* environment variables. Command-line flags override both.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
