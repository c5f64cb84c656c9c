package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// nameWindow is how many leading summary lines are searched for a name
	nameWindow   = 5
	minNameWords = 2
	maxNameWords = 5
	minPhoneLen  = 9
	maxPhoneLen  = 15
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().-]{7,}\d`)
	urlPattern   = regexp.MustCompile(`(?i)https?://|www\.|linkedin\.com|github\.com`)
)

// fillPersonal sets name, role, email, phone and summary
func (p *Parser) fillPersonal(resume *types.StructuredResume, summary, all []types.Line) {
	for _, l := range all {
		if resume.Email == "" {
			resume.Email = emailPattern.FindString(l.Text)
		}
		if resume.Phone == "" {
			resume.Phone = p.findPhone(l.Text)
		}
	}

	nameIdx, roleIdx := -1, -1
	for i := 0; i < len(summary) && i < nameWindow; i++ {
		if p.looksLikeName(summary[i].Text) {
			nameIdx = i
			resume.Name = summary[i].Text
			break
		}
	}
	if nameIdx >= 0 {
		for i := nameIdx + 1; i < len(summary); i++ {
			text := summary[i].Text
			if p.isContactLine(text) {
				continue
			}
			if utf8.RuneCountInString(text) < p.headingMaxLen {
				roleIdx = i
				resume.Role = text
			}
			break
		}
	}

	rest := make([]string, 0, len(summary))
	for i, l := range summary {
		if i == nameIdx || i == roleIdx || p.isContactLine(l.Text) {
			continue
		}
		rest = append(rest, l.Text)
	}
	resume.Summary = strings.Join(rest, " ")
}

// findPhone returns the first phone-like run in text that is not a date range
func (p *Parser) findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		candidate = strings.TrimSpace(candidate)
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits < minPhoneLen || digits > maxPhoneLen {
			continue
		}
		if _, isRange := p.chrono.FindRange(candidate); isRange {
			continue
		}
		return candidate
	}
	return ""
}

func (p *Parser) isContactLine(text string) bool {
	return emailPattern.MatchString(text) || urlPattern.MatchString(text) || p.findPhone(text) != ""
}

// looksLikeName accepts short lines of 2 to 5 words with no digits, email or URL
func (p *Parser) looksLikeName(text string) bool {
	if utf8.RuneCountInString(text) >= p.headingMaxLen {
		return false
	}
	if strings.Contains(text, "@") || urlPattern.MatchString(text) {
		return false
	}
	if strings.IndexFunc(text, unicode.IsDigit) >= 0 {
		return false
	}
	words := strings.Fields(text)
	return len(words) >= minNameWords && len(words) <= maxNameWords
}
