package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Show how a résumé file is split into sections",
	Long:  "Extracts and normalizes a résumé file, segments it into section buckets and prints each bucket's size and lines.",
	RunE:  runSections,
}

var (
	sectionsInput         string
	sectionsHeadingMaxLen int
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsInput, "in", "i", "", "Path to résumé file (required)")
	sectionsCmd.Flags().IntVar(&sectionsHeadingMaxLen, "heading-max-len", 0, "Lines this long or longer are never headings")

	if err := sectionsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	text, _, err := ingestion.ReadDocument(cmd.Context(), sectionsInput)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sectionsInput, err)
	}

	headingMaxLen := app.cfg.HeadingMaxLen
	if cmd.Flags().Changed("heading-max-len") {
		headingMaxLen = sectionsHeadingMaxLen
	}

	seg := sections.NewSegmenter(app.vocab.Sections, sections.WithHeadingMaxLen(headingMaxLen)).
		Segment(ingestion.NormalizeLines(text))

	app.printer.PrintSections(seg.Buckets)
	for _, key := range types.AllSections {
		lines, ok := seg.Buckets[key]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "\n[%s]\n", key)
		for _, line := range lines {
			_, _ = fmt.Fprintf(os.Stdout, "%4d  %s\n", line.Index, line.Text)
		}
	}
	return nil
}
