// Package skills finds known skill names in free text using a fixed vocabulary.
package skills

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit caps the number of skills reported for one résumé
const DefaultLimit = 15

// Extractor matches vocabulary entries against text
type Extractor struct {
	matchers []matcher
	limit    int
}

// Option configures an Extractor
type Option func(*Extractor)

// WithLimit overrides DefaultLimit. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(x *Extractor) {
		if n > 0 {
			x.limit = n
		}
	}
}

// matcher tests one vocabulary entry. Entries bounded by word characters
// use a whole-word pattern; entries with a leading or trailing symbol
// ("C++", ".NET") fall back to containment.
type matcher struct {
	name    string
	pattern *regexp.Regexp
	needle  string
}

func (m matcher) match(text, lower string) bool {
	if m.pattern != nil {
		return m.pattern.MatchString(text)
	}
	return strings.Contains(lower, m.needle)
}

// NewExtractor compiles a matcher per vocabulary entry. Duplicate entries
// (case-insensitive) keep their first position.
func NewExtractor(vocabulary []string, opts ...Option) *Extractor {
	x := &Extractor{limit: DefaultLimit}
	for _, opt := range opts {
		opt(x)
	}

	seen := make(map[string]bool, len(vocabulary))
	for _, entry := range vocabulary {
		entry = strings.TrimSpace(entry)
		key := strings.ToLower(entry)
		if entry == "" || seen[key] {
			continue
		}
		seen[key] = true
		x.matchers = append(x.matchers, newMatcher(entry))
	}
	return x
}

func newMatcher(entry string) matcher {
	first, _ := utf8.DecodeRuneInString(entry)
	last, _ := utf8.DecodeLastRuneInString(entry)
	if !isWordRune(first) || !isWordRune(last) {
		return matcher{name: entry, needle: strings.ToLower(entry)}
	}
	// a trailing '+' or '#' means a longer name ("C" inside "C++")
	pattern := `(?i)(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(entry) + `(?:$|[^\p{L}\p{N}_+#])`
	return matcher{name: entry, pattern: regexp.MustCompile(pattern)}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Extract returns the vocabulary entries present in text, in vocabulary
// order, at most the configured limit.
func (x *Extractor) Extract(text string) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}
	lower := strings.ToLower(text)
	for _, m := range x.matchers {
		if len(found) >= x.limit {
			break
		}
		if m.match(text, lower) {
			found = append(found, m.name)
		}
	}
	return found
}

// Limit reports the configured cap
func (x *Extractor) Limit() int {
	return x.limit
}
