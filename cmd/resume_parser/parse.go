package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse résumé files into structured JSON",
	Long: `Reads one or more résumé files (PDF, HTML or plain text), extracts their text and
writes a StructuredResume JSON document for each.

With a single --in and no --out the result is printed to stdout. With several
--in flags, --out names a directory and each result is written to
<out>/<basename>.resume.json; files are parsed concurrently.`,
	RunE: runParse,
}

var (
	parseInputs        []string
	parseOutput        string
	parseValidate      bool
	parseWorkers       int
	parseSkillLimit    int
	parseHeadingMaxLen int
)

func init() {
	parseCmd.Flags().StringArrayVarP(&parseInputs, "in", "i", nil, "Path to résumé file, repeatable (required)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Output file (single input) or directory (several inputs)")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate each result against the resume schema")
	parseCmd.Flags().IntVar(&parseWorkers, "workers", 0, "Concurrent parses for several inputs")
	parseCmd.Flags().IntVar(&parseSkillLimit, "skill-limit", 0, "Maximum number of skills reported")
	parseCmd.Flags().IntVar(&parseHeadingMaxLen, "heading-max-len", 0, "Lines this long or longer are never headings")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	cfg := app.cfg
	if cmd.Flags().Changed("validate") {
		cfg.ValidateOutput = parseValidate
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = parseWorkers
	}
	if cmd.Flags().Changed("skill-limit") {
		cfg.SkillLimit = parseSkillLimit
	}
	if cmd.Flags().Changed("heading-max-len") {
		cfg.HeadingMaxLen = parseHeadingMaxLen
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	parser := parsing.NewParser(app.vocab,
		parsing.WithHeadingMaxLen(cfg.HeadingMaxLen),
		parsing.WithSkillLimit(cfg.SkillLimit))
	ctx := cmd.Context()

	if len(parseInputs) == 1 {
		resume, meta, err := parseFile(ctx, parser, parseInputs[0], cfg.ValidateOutput)
		if err != nil {
			return err
		}
		if err := writeJSON(parseOutput, resume); err != nil {
			return err
		}
		if cfg.Verbose {
			printParseSummary(meta, resume)
		}
		return nil
	}

	if parseOutput == "" {
		return fmt.Errorf("--out must name a directory when several --in files are given")
	}

	results := make([]*types.StructuredResume, len(parseInputs))
	metas := make([]*ingestion.Metadata, len(parseInputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, input := range parseInputs {
		i, input := i, input
		g.Go(func() error {
			resume, meta, err := parseFile(gctx, parser, input, cfg.ValidateOutput)
			if err != nil {
				return err
			}
			results[i], metas[i] = resume, meta
			return writeJSON(batchOutputPath(parseOutput, input), resume)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range results {
		if cfg.Verbose {
			printParseSummary(metas[i], results[i])
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Parsed %d files into %s\n", len(results), parseOutput)
	return nil
}

// parseFile extracts, parses and optionally schema-checks one input
func parseFile(ctx context.Context, parser *parsing.Parser, path string, validate bool) (*types.StructuredResume, *ingestion.Metadata, error) {
	logger := observability.LoggerFromContext(ctx)

	text, meta, err := ingestion.ReadDocument(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.Info("extracted text",
		slog.String("source", path),
		slog.String("format", meta.Format),
		slog.Int("pages", meta.Pages),
		slog.Int("bytes", len(text)))

	resume := parser.Parse(ctx, text)

	if validate {
		data, err := json.Marshal(resume)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal result for %s: %w", path, err)
		}
		if err := schemas.ValidateResume(data); err != nil {
			return nil, nil, fmt.Errorf("result for %s failed schema validation: %w", path, err)
		}
	}

	logger.Info("parsed resume",
		slog.String("source", path),
		slog.Int("experience", len(resume.Experience)),
		slog.Int("education", len(resume.Education)),
		slog.Int("skills", len(resume.Skills)))
	return resume, meta, nil
}

func printParseSummary(meta *ingestion.Metadata, resume *types.StructuredResume) {
	if metaJSON, err := meta.ToJSON(); err == nil {
		_, _ = fmt.Fprintln(os.Stdout, string(metaJSON))
	}
	app.printer.PrintResume(resume)
}
