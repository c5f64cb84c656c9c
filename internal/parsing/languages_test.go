package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []types.Language
	}{
		{
			name:  "dash and parens",
			lines: []string{"Español - Nativo, English (C1)"},
			expected: []types.Language{
				{Language: "Español", Level: "Nativo"},
				{Language: "English", Level: "C1"},
			},
		},
		{
			name:  "colon and en dash",
			lines: []string{"Inglés: Avanzado; Francés–Básico"},
			expected: []types.Language{
				{Language: "Inglés", Level: "Avanzado"},
				{Language: "Francés", Level: "Básico"},
			},
		},
		{
			name:  "bullets and no level",
			lines: []string{"• German • Italian · Portuguese"},
			expected: []types.Language{
				{Language: "German"},
				{Language: "Italian"},
				{Language: "Portuguese"},
			},
		},
		{
			name:  "one per line with list markers",
			lines: []string{"- English - Fluent", "* Catalan"},
			expected: []types.Language{
				{Language: "English", Level: "Fluent"},
				{Language: "Catalan"},
			},
		},
		{
			name:     "empty",
			lines:    nil,
			expected: []types.Language{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]types.Line, len(tt.lines))
			for i, l := range tt.lines {
				lines[i] = types.Line{Index: i, Text: l}
			}
			assert.Equal(t, tt.expected, ParseLanguages(lines))
		})
	}
}
