// Package chrono splits a section of dated entries (work history, education)
// into discrete items, using date-range substrings as the only delimiter.
package chrono

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

const (
	// minRoleLen is the shortest lookback line accepted as a role candidate
	minRoleLen = 2
	// defaultCandidateMaxLen bounds organization lookback lines
	defaultCandidateMaxLen = 50
)

// Extractor turns a bucket of lines into dated entries
type Extractor struct {
	rangePattern    *regexp.Regexp
	placeholders    vocab.Placeholders
	candidateMaxLen int
}

// Option configures an Extractor
type Option func(*Extractor)

// WithCandidateMaxLen overrides the length limit for organization lookback lines
func WithCandidateMaxLen(n int) Option {
	return func(x *Extractor) {
		if n > 0 {
			x.candidateMaxLen = n
		}
	}
}

// NewExtractor compiles the date-range pattern from the vocabulary's month
// names and open-ended markers
func NewExtractor(v *vocab.Vocabulary, opts ...Option) *Extractor {
	x := &Extractor{
		rangePattern:    buildRangePattern(v.MonthNames(), v.RangeMarkers),
		placeholders:    v.Placeholders,
		candidateMaxLen: defaultCandidateMaxLen,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// FindRange returns the first date-range substring in text
func (x *Extractor) FindRange(text string) (string, bool) {
	loc := x.rangePattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// rawItem is an entry under construction
type rawItem struct {
	dateRangeText string
	headerLine    string
	roleCandidate string
	orgCandidate  string
	description   []string
}

// Extract splits lines into entries in source order. Each date-range match
// starts a new entry; a bucket without any match yields a single catch-all
// entry holding the whole text.
func (x *Extractor) Extract(lines []types.Line, kind types.EntryKind) []types.Entry {
	entries := make([]types.Entry, 0)
	if len(lines) == 0 {
		return entries
	}

	var (
		current  *rawItem
		pending  []string
		preamble []string
	)

	for _, line := range lines {
		loc := x.rangePattern.FindStringIndex(line.Text)
		if loc == nil {
			pending = append(pending, line.Text)
			continue
		}

		next := &rawItem{
			dateRangeText: line.Text[loc[0]:loc[1]],
			headerLine:    cleanHeader(line.Text[:loc[0]], line.Text[loc[1]:]),
		}
		pending = x.lookback(next, pending, current != nil)

		if current == nil {
			preamble = pending
		} else {
			current.description = pending
			entries = append(entries, x.flush(current, kind))
		}
		current = next
		pending = nil
	}

	if current == nil {
		return []types.Entry{x.fallback(lines, kind)}
	}
	current.description = pending
	entries = append(entries, x.flush(current, kind))

	// lines ahead of the first entry that lookback did not claim
	if len(preamble) > 0 {
		first := &entries[0]
		first.Description = strings.TrimSpace(strings.Join(preamble, "\n") + "\n" + first.Description)
	}
	return entries
}

// lookback claims up to two unconsumed lines preceding a date line: the
// nearest becomes the role candidate, the one before it the organization
// candidate. When the lines belong to a previous entry, that entry keeps at
// least one description line. Returns the lines left unclaimed.
func (x *Extractor) lookback(item *rawItem, pending []string, hasPrevious bool) []string {
	n := len(pending)
	if n == 0 || utf8.RuneCountInString(pending[n-1]) < minRoleLen {
		return pending
	}
	item.roleCandidate = pending[n-1]
	pending = pending[:n-1]

	n = len(pending)
	if n == 0 || (hasPrevious && n < 2) {
		return pending
	}
	if utf8.RuneCountInString(pending[n-1]) >= x.candidateMaxLen {
		return pending
	}
	item.orgCandidate = pending[n-1]
	return pending[:n-1]
}

// flush finalizes a raw item into an entry
func (x *Extractor) flush(item *rawItem, kind types.EntryKind) types.Entry {
	title, organization := x.assignFields(item, kind)
	return types.Entry{
		Kind:          kind,
		Organization:  organization,
		Title:         title,
		DateRangeText: item.dateRangeText,
		Description:   strings.TrimSpace(strings.Join(item.description, "\n")),
	}
}

// assignFields picks title and organization for an item. The role candidate
// always wins when present; otherwise the header line is split on " at " or
// "|", or taken whole as the title.
func (x *Extractor) assignFields(item *rawItem, kind types.EntryKind) (title, organization string) {
	titlePlaceholder, orgPlaceholder := x.fieldPlaceholders(kind)
	header := item.headerLine

	if item.roleCandidate != "" {
		switch {
		case item.orgCandidate != "":
			organization = item.orgCandidate
		case header != "":
			organization = header
		default:
			organization = orgPlaceholder
		}
		return item.roleCandidate, organization
	}

	if loc := atSeparator.FindStringIndex(header); loc != nil {
		return orPlaceholder(header[:loc[0]], titlePlaceholder), orPlaceholder(header[loc[1]:], orgPlaceholder)
	}
	if before, after, ok := strings.Cut(header, "|"); ok {
		return orPlaceholder(before, titlePlaceholder), orPlaceholder(after, orgPlaceholder)
	}
	return orPlaceholder(header, titlePlaceholder), orgPlaceholder
}

// fallback keeps an undated bucket as a single entry
func (x *Extractor) fallback(lines []types.Line, kind types.EntryKind) types.Entry {
	titlePlaceholder, orgPlaceholder := x.fieldPlaceholders(kind)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return types.Entry{
		Kind:          kind,
		Organization:  orgPlaceholder,
		Title:         titlePlaceholder,
		DateRangeText: x.placeholders.DateRange,
		Description:   strings.Join(texts, "\n"),
	}
}

func (x *Extractor) fieldPlaceholders(kind types.EntryKind) (title, organization string) {
	if kind == types.EntryEducation {
		return x.placeholders.Credential, x.placeholders.Institution
	}
	return x.placeholders.Title, x.placeholders.Organization
}

func orPlaceholder(s, placeholder string) string {
	s = strings.Trim(s, headerTrim)
	if s == "" {
		return placeholder
	}
	return s
}
