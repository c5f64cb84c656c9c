// Package sections partitions normalized résumé lines into named section
// buckets using a keyword dictionary and a short-line heading heuristic.
package sections

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// DefaultHeadingMaxLen is the exclusive rune-length limit for heading lines
const DefaultHeadingMaxLen = 50

// Segmentation is the result of segmenting a line sequence. Buckets partition
// every non-heading line; Headings holds the consumed heading lines.
type Segmentation struct {
	Buckets  map[types.SectionKey][]types.Line
	Headings []types.Line
}

// Lines returns the lines of a bucket, or nil when the section never appeared
func (s Segmentation) Lines(key types.SectionKey) []types.Line {
	return s.Buckets[key]
}

// Segmenter classifies lines into section buckets
type Segmenter struct {
	groups        []keywordGroup
	headingMaxLen int
}

type keywordGroup struct {
	key      types.SectionKey
	keywords []string
}

// Option configures a Segmenter
type Option func(*Segmenter)

// WithHeadingMaxLen overrides the heading length threshold
func WithHeadingMaxLen(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.headingMaxLen = n
		}
	}
}

// NewSegmenter builds a segmenter over an ordered keyword dictionary
func NewSegmenter(dict vocab.SectionDictionary, opts ...Option) *Segmenter {
	s := &Segmenter{
		groups:        make([]keywordGroup, 0, len(dict)),
		headingMaxLen: DefaultHeadingMaxLen,
	}
	for _, entry := range dict {
		group := keywordGroup{key: entry.Key}
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				group.keywords = append(group.keywords, kw)
			}
		}
		s.groups = append(s.groups, group)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment walks the lines and assigns each to the current section. Heading
// lines switch the current section and are not stored as content.
func (s *Segmenter) Segment(lines []types.Line) Segmentation {
	result := Segmentation{
		Buckets: map[types.SectionKey][]types.Line{
			types.SectionSummary: {},
		},
		Headings: []types.Line{},
	}

	current := types.SectionSummary
	var buffer []types.Line
	flush := func() {
		result.Buckets[current] = append(result.Buckets[current], buffer...)
		buffer = nil
	}

	for _, line := range lines {
		if key, ok := s.Classify(line.Text); ok {
			flush()
			current = key
			if _, exists := result.Buckets[current]; !exists {
				result.Buckets[current] = []types.Line{}
			}
			result.Headings = append(result.Headings, line)
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	return result
}

// Classify reports the section a heading line introduces. Lines at or above
// the length threshold are never headings.
func (s *Segmenter) Classify(text string) (types.SectionKey, bool) {
	if utf8.RuneCountInString(text) >= s.headingMaxLen {
		return "", false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return "", false
	}
	for _, group := range s.groups {
		for _, kw := range group.keywords {
			if matchesHeading(lower, kw) {
				return group.key, true
			}
		}
	}
	return "", false
}

// matchesHeading reports whether line equals kw or starts/ends with it as a
// whole word
func matchesHeading(line, kw string) bool {
	if line == kw {
		return true
	}
	if strings.HasPrefix(line, kw) {
		next, _ := utf8.DecodeRuneInString(line[len(kw):])
		if !isWordRune(next) {
			return true
		}
	}
	if strings.HasSuffix(line, kw) {
		prev, _ := utf8.DecodeLastRuneInString(line[:len(line)-len(kw)])
		if !isWordRune(prev) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
