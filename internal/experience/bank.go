package experience

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/dates"
	"github.com/jonathan/resume-parser/internal/types"
)

// Bank owns the experience, education and certification lists of one CV.
// Every mutation re-sorts the whole affected list by recency, so readers
// always see most-recent-first order. Safe for concurrent use.
type Bank struct {
	mu             sync.RWMutex
	dates          *dates.Service
	experience     []types.Experience
	education      []types.Education
	certifications []types.Certification
}

// NewBank creates an empty bank ordered by svc
func NewBank(svc *dates.Service) *Bank {
	return &Bank{
		dates:          svc,
		experience:     []types.Experience{},
		education:      []types.Education{},
		certifications: []types.Certification{},
	}
}

// rangeOf prefers free-text ranges and falls back to the legacy object shape
func rangeOf(text string, legacy *types.LegacyDates) dates.Range {
	if text == "" && legacy != nil {
		return dates.StructuredRange{Start: legacy.Start, End: legacy.End, IsPresent: legacy.IsPresent}
	}
	return dates.TextRange(text)
}

func experienceRange(e types.Experience) dates.Range { return rangeOf(e.DateRangeText, e.LegacyDates) }

func educationRange(e types.Education) dates.Range { return rangeOf(e.DateRangeText, e.LegacyDates) }

func certificationRange(c types.Certification) dates.Range {
	return rangeOf(c.DateRangeText, c.LegacyDates)
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// AddExperience stores e, assigning an ID when it has none, and returns the stored entry
func (b *Bank) AddExperience(e types.Experience) types.Experience {
	b.mu.Lock()
	defer b.mu.Unlock()

	e.ID = ensureID(e.ID)
	b.experience = dates.SortByRecency(b.dates, append(b.experience, e), experienceRange)
	return e
}

// UpdateExperience replaces the entry with the given ID
func (b *Bank) UpdateExperience(id string, e types.Experience) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.experience {
		if b.experience[i].ID == id {
			e.ID = id
			next := append([]types.Experience(nil), b.experience...)
			next[i] = e
			b.experience = dates.SortByRecency(b.dates, next, experienceRange)
			return nil
		}
	}
	return &NotFoundError{Kind: "experience", ID: id}
}

// AddEducation stores e, assigning an ID when it has none, and returns the stored entry
func (b *Bank) AddEducation(e types.Education) types.Education {
	b.mu.Lock()
	defer b.mu.Unlock()

	e.ID = ensureID(e.ID)
	b.education = dates.SortByRecency(b.dates, append(b.education, e), educationRange)
	return e
}

// UpdateEducation replaces the entry with the given ID
func (b *Bank) UpdateEducation(id string, e types.Education) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.education {
		if b.education[i].ID == id {
			e.ID = id
			next := append([]types.Education(nil), b.education...)
			next[i] = e
			b.education = dates.SortByRecency(b.dates, next, educationRange)
			return nil
		}
	}
	return &NotFoundError{Kind: "education", ID: id}
}

// AddCertification stores c, assigning an ID when it has none, and returns the stored entry
func (b *Bank) AddCertification(c types.Certification) types.Certification {
	b.mu.Lock()
	defer b.mu.Unlock()

	c.ID = ensureID(c.ID)
	b.certifications = dates.SortByRecency(b.dates, append(b.certifications, c), certificationRange)
	return c
}

// UpdateCertification replaces the entry with the given ID
func (b *Bank) UpdateCertification(id string, c types.Certification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.certifications {
		if b.certifications[i].ID == id {
			c.ID = id
			next := append([]types.Certification(nil), b.certifications...)
			next[i] = c
			b.certifications = dates.SortByRecency(b.dates, next, certificationRange)
			return nil
		}
	}
	return &NotFoundError{Kind: "certification", ID: id}
}

// ReplaceAll swaps in every list at once, assigning missing IDs
func (b *Bank) ReplaceAll(bank *types.ExperienceBank) {
	exp := make([]types.Experience, len(bank.Experience))
	for i, e := range bank.Experience {
		e.ID = ensureID(e.ID)
		exp[i] = e
	}
	edu := make([]types.Education, len(bank.Education))
	for i, e := range bank.Education {
		e.ID = ensureID(e.ID)
		edu[i] = e
	}
	certs := make([]types.Certification, len(bank.Certifications))
	for i, c := range bank.Certifications {
		c.ID = ensureID(c.ID)
		certs[i] = c
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.experience = dates.SortByRecency(b.dates, exp, experienceRange)
	b.education = dates.SortByRecency(b.dates, edu, educationRange)
	b.certifications = dates.SortByRecency(b.dates, certs, certificationRange)
}

// Snapshot returns a copy of the current lists
func (b *Bank) Snapshot() *types.ExperienceBank {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &types.ExperienceBank{
		Experience:     append([]types.Experience{}, b.experience...),
		Education:      append([]types.Education{}, b.education...),
		Certifications: append([]types.Certification{}, b.certifications...),
	}
}

// FromResume seeds a bank with the dated entries of a parse result
func FromResume(svc *dates.Service, resume *types.StructuredResume) *Bank {
	b := NewBank(svc)
	if resume == nil {
		return b
	}
	b.ReplaceAll(&types.ExperienceBank{
		Experience: resume.Experience,
		Education:  resume.Education,
	})
	return b
}
