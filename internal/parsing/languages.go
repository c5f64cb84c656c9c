package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var parenLevel = regexp.MustCompile(`^(.+?)\s*\(([^)]*)\)$`)

// levelSeparators split a language from its level, tried in order
var levelSeparators = []string{" - ", "–", ":"}

// ParseLanguages reads "Español - Nativo, English (C1)" style lines into
// language/level pairs. Lines are split on , ; • and ·.
func ParseLanguages(lines []types.Line) []types.Language {
	langs := make([]types.Language, 0)
	for _, l := range lines {
		items := strings.FieldsFunc(l.Text, func(r rune) bool {
			return r == ',' || r == ';' || r == '•' || r == '·'
		})
		for _, item := range items {
			item = strings.TrimLeft(strings.TrimSpace(item), "-* ")
			if item == "" {
				continue
			}
			langs = append(langs, splitLanguage(item))
		}
	}
	return langs
}

func splitLanguage(item string) types.Language {
	if m := parenLevel.FindStringSubmatch(item); m != nil {
		return types.Language{Language: strings.TrimSpace(m[1]), Level: strings.TrimSpace(m[2])}
	}
	for _, sep := range levelSeparators {
		if lang, level, ok := strings.Cut(item, sep); ok {
			return types.Language{Language: strings.TrimSpace(lang), Level: strings.TrimSpace(level)}
		}
	}
	return types.Language{Language: item}
}
