// Package observability provides structured logging and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed résumé.
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Name))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", resume.Role))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.Phone))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", exp.Title, exp.Organization, exp.DateRangeText))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			edu := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", edu.Credential, edu.Institution, edu.DateRangeText))
		}
		if len(resume.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(resume.Skills, ", ")))
	}

	if len(resume.Languages) > 0 {
		langs := make([]string, len(resume.Languages))
		for i, l := range resume.Languages {
			langs[i] = l.Language
			if l.Level != "" {
				langs[i] += " (" + l.Level + ")"
			}
		}
		sb.WriteString(fmt.Sprintf("Languages: %s\n", strings.Join(langs, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the line count of each detected section.
func (p *Printer) PrintSections(buckets map[types.SectionKey][]types.Line) {
	if len(buckets) == 0 {
		return
	}

	var sb strings.Builder
	for _, key := range types.AllSections {
		lines, ok := buckets[key]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-16s %d lines\n", key, len(lines)))
		if len(lines) > 0 {
			sb.WriteString(fmt.Sprintf("  %s\n", lines[0].Text))
		}
	}

	p.printBox("SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBank outputs the entries of an experience bank in stored order.
func (p *Printer) PrintBank(bank *types.ExperienceBank) {
	if bank == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %d  Education: %d  Certifications: %d\n\n",
		len(bank.Experience), len(bank.Education), len(bank.Certifications)))

	count := min(len(bank.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := bank.Experience[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, exp.Title))
		sb.WriteString(fmt.Sprintf("    %s | %s\n", exp.Organization, bankDates(exp.DateRangeText, exp.LegacyDates)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(bank.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(bank.Experience)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE BANK", strings.TrimSuffix(sb.String(), "\n"))
}

func bankDates(text string, legacy *types.LegacyDates) string {
	if text != "" || legacy == nil {
		return text
	}
	if legacy.IsPresent {
		return legacy.Start + " - present"
	}
	return legacy.Start + " - " + legacy.End
}

// PrintValidation outputs the result of a schema check.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(name string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate("✅ VALID: "+name, boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(name + "\n\n")
	for _, line := range strings.Split(err.Error(), "\n") {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", line))
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
