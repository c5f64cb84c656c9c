package types

// SectionKey identifies a résumé section bucket
type SectionKey string

// Section keys, in the order buckets are reported
const (
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionLanguages      SectionKey = "languages"
	SectionProjects       SectionKey = "projects"
	SectionCertifications SectionKey = "certifications"
)

// AllSections lists every section key in reporting order
var AllSections = []SectionKey{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
	SectionProjects,
	SectionCertifications,
}

// Valid reports whether k is one of the known section keys
func (k SectionKey) Valid() bool {
	for _, s := range AllSections {
		if s == k {
			return true
		}
	}
	return false
}

// Line is a trimmed, non-empty line of input with its position in the
// normalized sequence.
type Line struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// EntryKind selects the output field names of an extracted entry
type EntryKind string

const (
	// EntryExperience produces organization/title entries
	EntryExperience EntryKind = "experience"
	// EntryEducation produces institution/credential entries
	EntryEducation EntryKind = "education"
)

// Entry is a kind-neutral dated entry produced by the chronological extractor.
// Organization maps to the institution and Title to the credential for
// education entries.
type Entry struct {
	Kind          EntryKind `json:"kind"`
	Organization  string    `json:"organization"`
	Title         string    `json:"title"`
	DateRangeText string    `json:"date_range"`
	Description   string    `json:"description"`
}

// AsExperience converts the entry to a work-history entry
func (e Entry) AsExperience() Experience {
	return Experience{
		Organization:  e.Organization,
		Title:         e.Title,
		DateRangeText: e.DateRangeText,
		Description:   e.Description,
	}
}

// AsEducation converts the entry to an education entry
func (e Entry) AsEducation() Education {
	return Education{
		Institution:   e.Organization,
		Credential:    e.Title,
		DateRangeText: e.DateRangeText,
		Description:   e.Description,
	}
}

// Language is a spoken language with an optional proficiency level
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// StructuredResume is the aggregate produced by a single parse
type StructuredResume struct {
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
	Languages  []Language   `json:"languages"`
}

// NewStructuredResume returns an empty resume with non-nil collections so the
// JSON form always carries arrays.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []string{},
		Languages:  []Language{},
	}
}
