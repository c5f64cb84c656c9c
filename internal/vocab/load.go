package vocab

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-parser/internal/types"
)

// Load reads a YAML vocabulary file. Tables missing from the file fall back
// to the built-in defaults; an explicit empty skills list is honored.
func Load(path string) (*Vocabulary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(content, path)
}

// Parse decodes YAML vocabulary content. name is only used in error messages.
func Parse(content []byte, name string) (*Vocabulary, error) {
	var raw struct {
		Sections     SectionDictionary `yaml:"sections"`
		Months       []Month           `yaml:"months"`
		RangeMarkers []string          `yaml:"range_markers"`
		OpenMarkers  []string          `yaml:"open_markers"`
		Skills       *[]string         `yaml:"skills"`
		Placeholders *Placeholders     `yaml:"placeholders"`
	}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{Path: name, Message: "failed to decode YAML", Cause: err}
	}

	v := Default()
	if len(raw.Sections) > 0 {
		v.Sections = raw.Sections
	}
	if len(raw.Months) > 0 {
		v.Months = raw.Months
	}
	if len(raw.RangeMarkers) > 0 {
		v.RangeMarkers = raw.RangeMarkers
	}
	if len(raw.OpenMarkers) > 0 {
		v.OpenMarkers = raw.OpenMarkers
	}
	if raw.Skills != nil {
		v.Skills = *raw.Skills
	}
	if raw.Placeholders != nil {
		v.Placeholders = mergePlaceholders(*raw.Placeholders, v.Placeholders)
	}

	if err := v.Validate(); err != nil {
		return nil, &LoadError{Path: name, Message: "invalid vocabulary", Cause: err}
	}
	return v, nil
}

func mergePlaceholders(p, defaults Placeholders) Placeholders {
	if p.Organization == "" {
		p.Organization = defaults.Organization
	}
	if p.Title == "" {
		p.Title = defaults.Title
	}
	if p.Institution == "" {
		p.Institution = defaults.Institution
	}
	if p.Credential == "" {
		p.Credential = defaults.Credential
	}
	if p.DateRange == "" {
		p.DateRange = defaults.DateRange
	}
	return p
}

// Validate checks the tables are usable by the parser
func (v *Vocabulary) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		return types.SectionKey(fl.Field().String()).Valid()
	}); err != nil {
		return fmt.Errorf("failed to register section validator: %w", err)
	}
	return validate.Struct(v)
}
