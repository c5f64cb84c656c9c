package chrono

import (
	"regexp"
	"sort"
	"strings"
)

// buildRangePattern compiles `<DatePart> <dash> <DatePart>` where DatePart is
// a 4-digit year, optionally led by a month name or a numeric "MM/" prefix,
// or an open-ended marker.
// Alternatives are ordered longest first so "Presente" is captured whole.
func buildRangePattern(monthNames, markers []string) *regexp.Regexp {
	months := quoteLongestFirst(monthNames)
	open := quoteLongestFirst(markers)

	year := `\b(?:\d{1,2}[/.])?\d{4}\b`
	if months != "" {
		year = `(?:\b(?:` + months + `)\.?\s*(?:de\s+)?|\b(?:\d{1,2}[/.])?)\d{4}\b`
	}
	part := year
	if open != "" {
		part = `(?:` + year + `|\b(?:` + open + `)\b)`
	}
	return regexp.MustCompile(`(?i)` + part + `\s*[-–—]\s*` + part)
}

func quoteLongestFirst(words []string) string {
	seen := make(map[string]bool, len(words))
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		quoted = append(quoted, w)
	}
	sort.SliceStable(quoted, func(i, j int) bool {
		return len(quoted[i]) > len(quoted[j])
	})
	for i, w := range quoted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

var (
	emptyBrackets = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
	spaceRun      = regexp.MustCompile(`\s+`)
	atSeparator   = regexp.MustCompile(`(?i)\s+at\s+`)
)

// headerTrim is the separator debris left around a removed date
const headerTrim = " ,;:|-–—·•"

// cleanHeader joins the text around a removed date and strips leftover separators
func cleanHeader(before, after string) string {
	header := strings.TrimSpace(before) + " " + strings.TrimSpace(after)
	header = emptyBrackets.ReplaceAllString(header, " ")
	header = spaceRun.ReplaceAllString(header, " ")
	return strings.Trim(header, headerTrim)
}
