package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const personSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"}
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{"valid", `{"name": "Jane", "age": 30}`, false},
		{"missing required field", `{"age": 30}`, true},
		{"wrong type", `{"name": "Jane", "age": "thirty"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, dir, tt.name+".json", tt.document)
			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError, got %T", err)
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateJSON_NotFound(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "Jane"}`)

	err := ValidateJSON(filepath.Join(dir, "nonexistent_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "malformed.json", "{ invalid json }")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "Jane"}`))

	err := ValidateJSONString(personSchema, `{}`)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateResume(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Name = "Jane Doe"
	resume.Experience = append(resume.Experience, types.Experience{
		Organization:  "Tech Corp",
		Title:         "Senior Engineer",
		DateRangeText: "2021 - Presente",
		Description:   "Led platform migration.",
	})
	resume.Skills = []string{"Go"}
	resume.Languages = []types.Language{{Language: "English"}}

	data, err := json.Marshal(resume)
	require.NoError(t, err)
	assert.NoError(t, ValidateResume(data))

	empty, err := json.Marshal(types.NewStructuredResume())
	require.NoError(t, err)
	assert.NoError(t, ValidateResume(empty))
}

func TestValidateResume_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"missing collections", `{"name": "", "role": "", "email": "", "phone": "", "summary": ""}`},
		{"null skills", `{"name": "", "role": "", "email": "", "phone": "", "summary": "", "experience": [], "education": [], "skills": null, "languages": []}`},
		{"empty date range", `{"name": "", "role": "", "email": "", "phone": "", "summary": "", "experience": [{"organization": "A", "title": "B", "date_range": "", "description": ""}], "education": [], "skills": [], "languages": []}`},
		{"duplicate skills", `{"name": "", "role": "", "email": "", "phone": "", "summary": "", "experience": [], "education": [], "skills": ["Go", "Go"], "languages": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.document))
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
		})
	}
}

func TestValidateBank(t *testing.T) {
	valid := `{
	  "experience": [
	    {"organization": "Acme", "title": "Engineer", "date_range": "2019 - 2021"},
	    {"organization": "Globex", "title": "Intern", "dates": {"start": "2017", "is_present": true}}
	  ],
	  "certifications": [{"name": "CKA"}]
	}`
	assert.NoError(t, ValidateBank([]byte(valid)))

	undated := `{"experience": [{"organization": "Acme", "title": "Engineer", "date_range": ""}]}`
	var validationErr *ValidationError
	assert.True(t, errors.As(ValidateBank([]byte(undated)), &validationErr))

	noName := `{"certifications": [{"issuer": "CNCF"}]}`
	assert.True(t, errors.As(ValidateBank([]byte(noName)), &validationErr))
}
