// Package ingestion turns raw résumé documents into the ordered, clean line
// sequence the parser works on.
package ingestion

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/resume-parser/internal/types"
)

// lineBreaks are converted to LF before splitting; PDF text layers use all of them
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n",
	"\v", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// NormalizeLines splits text into trimmed, non-empty lines with whitespace
// artifacts collapsed. Applying it to its own joined output is a no-op.
func NormalizeLines(text string) []types.Line {
	lines := make([]types.Line, 0)
	if text == "" {
		return lines
	}

	text = lineBreaks.Replace(text)

	for _, raw := range strings.Split(text, "\n") {
		// PDF extractors frequently emit decomposed accents
		cleaned := norm.NFC.String(cleanLine(raw))
		if cleaned == "" {
			continue
		}
		lines = append(lines, types.Line{Index: len(lines), Text: cleaned})
	}
	return lines
}

// NormalizeText is NormalizeLines joined back with LF
func NormalizeText(text string) string {
	return JoinLines(NormalizeLines(text))
}

// JoinLines joins line texts with LF
func JoinLines(lines []types.Line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// cleanLine maps every Unicode space to a single ASCII space and drops
// invisible characters
func cleanLine(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	pendingSpace := false

	for _, r := range line {
		switch {
		case r == '\u200b' || r == '\u200c' || r == '\u200d' || r == '\ufeff' || r == '\u00ad':
			continue
		case unicode.IsSpace(r) || unicode.Is(unicode.Zs, r):
			pendingSpace = sb.Len() > 0
		case unicode.IsControl(r):
			continue
		default:
			if pendingSpace {
				sb.WriteByte(' ')
				pendingSpace = false
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
