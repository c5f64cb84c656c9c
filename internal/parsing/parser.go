// Package parsing assembles a StructuredResume from raw résumé text by
// chaining normalization, section segmentation, chronological extraction,
// skill matching and personal-field heuristics.
package parsing

import (
	"context"
	"log/slog"

	"github.com/jonathan/resume-parser/internal/chrono"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Parser turns raw text into a StructuredResume. A Parser holds only
// compiled, read-only tables and may be shared across goroutines.
type Parser struct {
	segmenter     *sections.Segmenter
	chrono        *chrono.Extractor
	skills        *skills.Extractor
	headingMaxLen int
	skillLimit    int
	logger        *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for debug output. Without it the logger
// carried by the Parse context is used.
func WithLogger(lg *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = lg
	}
}

// WithHeadingMaxLen overrides the heading and short-line threshold
func WithHeadingMaxLen(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.headingMaxLen = n
		}
	}
}

// WithSkillLimit overrides the number of skills reported
func WithSkillLimit(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.skillLimit = n
		}
	}
}

// NewParser compiles every stage from the vocabulary
func NewParser(v *vocab.Vocabulary, opts ...Option) *Parser {
	p := &Parser{
		headingMaxLen: sections.DefaultHeadingMaxLen,
		skillLimit:    skills.DefaultLimit,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.segmenter = sections.NewSegmenter(v.Sections, sections.WithHeadingMaxLen(p.headingMaxLen))
	p.chrono = chrono.NewExtractor(v, chrono.WithCandidateMaxLen(p.headingMaxLen))
	p.skills = skills.NewExtractor(v.Skills, skills.WithLimit(p.skillLimit))
	return p
}

// Parse runs the full pipeline. It never fails: fields that cannot be
// derived are left empty or carry placeholders, and collections are
// always non-nil.
func (p *Parser) Parse(ctx context.Context, text string) *types.StructuredResume {
	logger := p.logger
	if logger == nil {
		logger = observability.LoggerFromContext(ctx)
	}

	resume := types.NewStructuredResume()

	lines := ingestion.NormalizeLines(text)
	if len(lines) == 0 {
		logger.Debug("empty input after normalization")
		return resume
	}

	seg := p.segmenter.Segment(lines)
	logger.Debug("segmented input",
		slog.Int("lines", len(lines)),
		slog.Int("buckets", len(seg.Buckets)),
		slog.Int("headings", len(seg.Headings)))

	for _, e := range p.chrono.Extract(seg.Lines(types.SectionExperience), types.EntryExperience) {
		resume.Experience = append(resume.Experience, e.AsExperience())
	}
	for _, e := range p.chrono.Extract(seg.Lines(types.SectionEducation), types.EntryEducation) {
		resume.Education = append(resume.Education, e.AsEducation())
	}
	logger.Debug("extracted dated entries",
		slog.Int("experience", len(resume.Experience)),
		slog.Int("education", len(resume.Education)))

	resume.Skills = p.skills.Extract(ingestion.JoinLines(lines))
	resume.Languages = ParseLanguages(seg.Lines(types.SectionLanguages))

	p.fillPersonal(resume, seg.Lines(types.SectionSummary), lines)
	logger.Debug("parsed resume",
		slog.Bool("name_found", resume.Name != ""),
		slog.Int("skills", len(resume.Skills)),
		slog.Int("languages", len(resume.Languages)))

	return resume
}
