package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"

	"github.com/jonathan/resume-parser/internal/vocab"
)

// Ordinal is a sortable date value encoded as year*10000 + month*100 + day.
// Month and day are 0 when unknown.
type Ordinal int64

const (
	// MaxOrdinal marks an open-ended side ("present", "actualidad")
	MaxOrdinal Ordinal = math.MaxInt64
	// MinOrdinal marks a side that could not be parsed
	MinOrdinal Ordinal = math.MinInt64
)

// Resolved is a range reduced to comparable endpoints
type Resolved struct {
	Start Ordinal `json:"start"`
	End   Ordinal `json:"end"`
}

var (
	bareYear         = regexp.MustCompile(`^\d{4}$`)
	monthNameYear    = regexp.MustCompile(`(?i)^(\p{L}+)\.?\s*(?:de\s+)?(\d{4})$`)
	numericMonthYear = regexp.MustCompile(`^(\d{1,2})[/.](\d{4})$`)
	anyYear          = regexp.MustCompile(`\b(\d{4})\b`)
)

// Service resolves and compares date ranges using a vocabulary's month and
// open-marker tables. It is safe for concurrent use.
type Service struct {
	months      map[string]int
	openMarkers []string
}

// NewService builds a service from the vocabulary
func NewService(v *vocab.Vocabulary) *Service {
	markers := make([]string, 0, len(v.OpenMarkers))
	for _, m := range v.OpenMarkers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			markers = append(markers, m)
		}
	}
	return &Service{
		months:      v.MonthIndex(),
		openMarkers: markers,
	}
}

// Resolve reduces r to start and end ordinals
func (s *Service) Resolve(r Range) Resolved {
	switch r := r.(type) {
	case TextRange:
		return s.resolveText(string(r))
	case StructuredRange:
		return s.resolveStructured(r)
	default:
		return Resolved{Start: MinOrdinal, End: MinOrdinal}
	}
}

func (s *Service) resolveText(text string) Resolved {
	text = strings.TrimSpace(text)
	idx := strings.IndexAny(text, "-–—")
	if idx < 0 {
		v := s.side(text)
		return Resolved{Start: v, End: v}
	}
	_, width := utf8.DecodeRuneInString(text[idx:])
	return Resolved{
		Start: s.side(text[:idx]),
		End:   s.side(text[idx+width:]),
	}
}

func (s *Service) resolveStructured(r StructuredRange) Resolved {
	start := s.side(r.Start)
	end := strings.TrimSpace(r.End)
	switch {
	case r.IsPresent || (end != "" && s.isOpen(end)):
		return Resolved{Start: start, End: MaxOrdinal}
	case end == "":
		return Resolved{Start: start, End: start}
	default:
		return Resolved{Start: start, End: s.side(end)}
	}
}

// IsOpen reports whether text names an ongoing period
func (s *Service) IsOpen(text string) bool {
	return s.isOpen(text)
}

func (s *Service) isOpen(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range s.openMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// side parses one endpoint: bare year, month + year, full date, any year
func (s *Service) side(text string) Ordinal {
	text = strings.TrimSpace(text)
	if text == "" {
		return MinOrdinal
	}
	if s.isOpen(text) {
		return MaxOrdinal
	}
	if bareYear.MatchString(text) {
		return yearOrdinal(text, 0)
	}
	if m := monthNameYear.FindStringSubmatch(text); m != nil {
		if month, ok := s.months[strings.ToLower(m[1])]; ok {
			return yearOrdinal(m[2], month)
		}
	}
	if m := numericMonthYear.FindStringSubmatch(text); m != nil {
		if month, _ := strconv.Atoi(m[1]); month >= 1 && month <= 12 {
			return yearOrdinal(m[2], month)
		}
	}
	if t, ok := parseAny(text); ok {
		return Ordinal(t.Year()*10000 + int(t.Month())*100 + t.Day())
	}
	if m := anyYear.FindStringSubmatch(text); m != nil {
		return yearOrdinal(m[1], 0)
	}
	return MinOrdinal
}

// parseAny runs the general-purpose date parser, which panics on some inputs
func parseAny(text string) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	parsed, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func yearOrdinal(year string, month int) Ordinal {
	y, err := strconv.Atoi(year)
	if err != nil {
		return MinOrdinal
	}
	return Ordinal(y*10000 + month*100)
}

// Compare orders a before b when it is more recent: later end first, then
// later start. Returns a negative number when a ranks first, 0 on a tie.
func (s *Service) Compare(a, b Range) int {
	return compareResolved(s.Resolve(a), s.Resolve(b))
}

func compareResolved(a, b Resolved) int {
	switch {
	case a.End > b.End:
		return -1
	case a.End < b.End:
		return 1
	case a.Start > b.Start:
		return -1
	case a.Start < b.Start:
		return 1
	default:
		return 0
	}
}
