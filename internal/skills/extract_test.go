package skills

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/vocab"
)

func TestExtract_DefaultVocabulary(t *testing.T) {
	x := NewExtractor(vocab.Default().Skills)

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "vocabulary order not text order",
			text:     "Built services in Golang and React with Node.js; some C++ and C#.",
			expected: []string{"React", "Node.js", "C++", "C#", "Golang"},
		},
		{
			name:     "case insensitive",
			text:     "python, DOCKER and kubernetes",
			expected: []string{"Python", "Docker", "Kubernetes"},
		},
		{
			name:     "whole words only",
			text:     "Javanese cuisine, a gitlab mirror and an expressway",
			expected: []string{},
		},
		{
			name:     "java is not javascript",
			text:     "JavaScript everywhere",
			expected: []string{"JavaScript"},
		},
		{
			name:     "symbol entries by containment",
			text:     "Migrated .NET apps to ASP.NET Core",
			expected: []string{".NET"},
		},
		{
			name:     "multi word entries",
			text:     "Dashboards in Power BI; machine learning pipelines",
			expected: []string{"Power BI", "Machine Learning"},
		},
		{
			name:     "repeated mentions reported once",
			text:     "SQL, more SQL, PostgreSQL",
			expected: []string{"SQL", "PostgreSQL"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, x.Extract(tt.text))
		})
	}
}

func TestExtract_SingleLetterEntry(t *testing.T) {
	x := NewExtractor([]string{"C", "R"})

	assert.Equal(t, []string{}, x.Extract("Embedded work in C++ and C#"))
	assert.Equal(t, []string{"C"}, x.Extract("Embedded work in C, later C++"))
	assert.Equal(t, []string{"C", "R"}, x.Extract("Statistics with R and C."))
}

func TestExtract_Limit(t *testing.T) {
	vocabulary := make([]string, 0, 30)
	text := ""
	for i := 0; i < 30; i++ {
		name := fmt.Sprintf("skill%02d", i)
		vocabulary = append(vocabulary, name)
		text += name + " "
	}

	x := NewExtractor(vocabulary)
	got := x.Extract(text)
	assert.Len(t, got, DefaultLimit)
	assert.Equal(t, "skill00", got[0])
	assert.Equal(t, "skill14", got[DefaultLimit-1])

	x = NewExtractor(vocabulary, WithLimit(3))
	assert.Equal(t, []string{"skill00", "skill01", "skill02"}, x.Extract(text))
	assert.Equal(t, 3, x.Limit())

	x = NewExtractor(vocabulary, WithLimit(0))
	assert.Equal(t, DefaultLimit, x.Limit())
}

func TestExtract_EmptyVocabulary(t *testing.T) {
	x := NewExtractor(nil)
	got := x.Extract("Go, Python, Rust")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewExtractor_DeduplicatesVocabulary(t *testing.T) {
	x := NewExtractor([]string{"Rust", "rust", " ", "RUST", "Go"})
	assert.Equal(t, []string{"Rust", "Go"}, x.Extract("rust and go"))
}

func TestExtract_SpanishSentence(t *testing.T) {
	x := NewExtractor(vocab.Default().Skills)
	assert.Equal(t, []string{"React", "Node.js", "C++"}, x.Extract("Experto en React, Node.js y C++"))
}
