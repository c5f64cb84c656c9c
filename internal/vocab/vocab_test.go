package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestDefault_IsValid(t *testing.T) {
	v := Default()
	require.NoError(t, v.Validate())

	assert.Equal(t, types.SectionExperience, v.Sections[0].Key)
	assert.Contains(t, v.Skills, "C++")
	assert.NotEmpty(t, v.Placeholders.Organization)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Skills[0] = "changed"
	a.Sections[0].Keywords[0] = "changed"

	b := Default()
	assert.Equal(t, "JavaScript", b.Skills[0])
	assert.Equal(t, "experiencia", b.Sections[0].Keywords[0])
}

func TestMonthIndex(t *testing.T) {
	index := Default().MonthIndex()

	tests := []struct {
		name     string
		expected int
	}{
		{"jan", 1},
		{"enero", 1},
		{"sept", 9},
		{"setiembre", 9},
		{"dic", 12},
		{"december", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, index[tt.name])
		})
	}
}

func TestParse_FillsMissingTablesFromDefaults(t *testing.T) {
	content := []byte(`
skills:
  - Go
  - Erlang
placeholders:
  organization: "Empresa no detectada"
`)
	v, err := Parse(content, "inline")
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Erlang"}, v.Skills)
	assert.Equal(t, "Empresa no detectada", v.Placeholders.Organization)
	assert.Equal(t, Default().Placeholders.Title, v.Placeholders.Title)
	assert.Equal(t, Default().Sections, v.Sections)
	assert.Equal(t, Default().Months, v.Months)
}

func TestParse_EmptySkillListIsHonored(t *testing.T) {
	v, err := Parse([]byte("skills: []\n"), "inline")
	require.NoError(t, err)
	assert.Empty(t, v.Skills)
}

func TestParse_InvalidSectionKey(t *testing.T) {
	content := []byte(`
sections:
  - key: awards
    keywords: [awards]
`)
	_, err := Parse(content, "inline")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "invalid vocabulary")
}

func TestParse_InvalidMonthNumber(t *testing.T) {
	content := []byte(`
months:
  - number: 13
    names: [smarch]
`)
	_, err := Parse(content, "inline")
	assert.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("sections: [\n"), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range_markers: [now]\n"), 0644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"now"}, v.RangeMarkers)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/vocab.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
