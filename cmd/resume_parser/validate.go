package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a parse result against the resume schema",
	Long:  "Checks a StructuredResume JSON file against the embedded resume schema, or against --schema when given.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to StructuredResume JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to an alternate JSON Schema file")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	} else {
		content, readErr := os.ReadFile(validateInput)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", validateInput, readErr)
		}
		err = schemas.ValidateResume(content)
	}

	app.printer.PrintValidation(validateInput, err)
	if err != nil {
		return fmt.Errorf("validation failed for %s", validateInput)
	}
	return nil
}
