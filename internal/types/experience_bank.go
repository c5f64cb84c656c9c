// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceBank is the persisted shape of a CV record's dated lists.
// Every list is kept in descending recency order by its owner.
type ExperienceBank struct {
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
}

// Experience is a single work-history entry
type Experience struct {
	ID            string       `json:"id,omitempty"`
	Organization  string       `json:"organization"`
	Title         string       `json:"title"`
	DateRangeText string       `json:"date_range"`
	Description   string       `json:"description"`
	LegacyDates   *LegacyDates `json:"dates,omitempty"`
}

// Education is a single education entry
type Education struct {
	ID            string       `json:"id,omitempty"`
	Institution   string       `json:"institution"`
	Credential    string       `json:"credential"`
	DateRangeText string       `json:"date_range"`
	Description   string       `json:"description"`
	LegacyDates   *LegacyDates `json:"dates,omitempty"`
}

// Certification is a single certification or course entry
type Certification struct {
	ID            string       `json:"id,omitempty"`
	Name          string       `json:"name"`
	Issuer        string       `json:"issuer,omitempty"`
	DateRangeText string       `json:"date_range,omitempty"`
	LegacyDates   *LegacyDates `json:"dates,omitempty"`
}

// LegacyDates is the object-shaped date representation written by older
// versions of the editor. It is only read, never produced by the parser.
type LegacyDates struct {
	Start     string `json:"start"`
	End       string `json:"end,omitempty"`
	IsPresent bool   `json:"is_present,omitempty"`
}
