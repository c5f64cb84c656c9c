// Package vocab holds the keyword, month, marker and skill tables the parser
// runs on. Tables are plain data so alternate locales can be swapped in
// without touching the algorithms.
package vocab

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Vocabulary bundles every table consumed by the parsing engine
type Vocabulary struct {
	Sections     SectionDictionary `yaml:"sections" validate:"required,min=1,dive"`
	Months       []Month           `yaml:"months" validate:"required,min=1,dive"`
	RangeMarkers []string          `yaml:"range_markers" validate:"required,min=1,dive,required"`
	OpenMarkers  []string          `yaml:"open_markers" validate:"required,min=1,dive,required"`
	Skills       []string          `yaml:"skills" validate:"dive,required"`
	Placeholders Placeholders      `yaml:"placeholders"`
}

// SectionDictionary is an ordered list of section keyword groups.
// Order is significant: the first group that matches a heading wins.
type SectionDictionary []SectionKeywords

// SectionKeywords maps a section key to its heading variants
type SectionKeywords struct {
	Key      types.SectionKey `yaml:"key" validate:"required,section"`
	Keywords []string         `yaml:"keywords" validate:"required,min=1,dive,required"`
}

// Month maps a month number to its names and abbreviations
type Month struct {
	Number int      `yaml:"number" validate:"gte=1,lte=12"`
	Names  []string `yaml:"names" validate:"required,min=1,dive,required"`
}

// Placeholders are the explicit markers used for fields that could not be derived
type Placeholders struct {
	Organization string `yaml:"organization"`
	Title        string `yaml:"title"`
	Institution  string `yaml:"institution"`
	Credential   string `yaml:"credential"`
	DateRange    string `yaml:"date_range"`
}

// MonthIndex returns a lowercase name → month number lookup
func (v *Vocabulary) MonthIndex() map[string]int {
	index := make(map[string]int)
	for _, m := range v.Months {
		for _, name := range m.Names {
			index[strings.ToLower(strings.TrimSpace(name))] = m.Number
		}
	}
	return index
}

// MonthNames returns every month name and abbreviation, lowercased
func (v *Vocabulary) MonthNames() []string {
	names := make([]string, 0, len(v.Months)*4)
	for _, m := range v.Months {
		for _, name := range m.Names {
			names = append(names, strings.ToLower(strings.TrimSpace(name)))
		}
	}
	return names
}

// Clone returns a deep copy so callers can adjust tables without sharing backing arrays
func (v *Vocabulary) Clone() *Vocabulary {
	out := &Vocabulary{
		Sections:     make(SectionDictionary, len(v.Sections)),
		Months:       make([]Month, len(v.Months)),
		RangeMarkers: append([]string(nil), v.RangeMarkers...),
		OpenMarkers:  append([]string(nil), v.OpenMarkers...),
		Skills:       append([]string(nil), v.Skills...),
		Placeholders: v.Placeholders,
	}
	for i, s := range v.Sections {
		out.Sections[i] = SectionKeywords{Key: s.Key, Keywords: append([]string(nil), s.Keywords...)}
	}
	for i, m := range v.Months {
		out.Months[i] = Month{Number: m.Number, Names: append([]string(nil), m.Names...)}
	}
	return out
}
