package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestNormalizeLines_Basic(t *testing.T) {
	input := "  Jane Doe  \r\n\r\nSoftware\tEngineer\rjane@example.com\n\n\n"
	result := NormalizeLines(input)

	expected := []types.Line{
		{Index: 0, Text: "Jane Doe"},
		{Index: 1, Text: "Software Engineer"},
		{Index: 2, Text: "jane@example.com"},
	}
	assert.Equal(t, expected, result)
}

func TestNormalizeLines_CollapsesWhitespaceArtifacts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tabs", "Senior\t\tEngineer", "Senior Engineer"},
		{"non-breaking space", "Tech\u00a0Corp", "Tech Corp"},
		{"narrow no-break space", "2021\u202f-\u202f2022", "2021 - 2022"},
		{"multiple spaces", "Led    platform   migration", "Led platform migration"},
		{"zero width space", "Java\u200bScript", "JavaScript"},
		{"soft hyphen", "Inge\u00adniero", "Ingeniero"},
		{"decomposed accent", "Educacio\u0301n", "Educaci\u00f3n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeLines(tt.input)
			require.Len(t, result, 1)
			assert.Equal(t, tt.expected, result[0].Text)
		})
	}
}

func TestNormalizeLines_PageBreaks(t *testing.T) {
	result := NormalizeLines("Page one\fPage two\u2028Page three")
	require.Len(t, result, 3)
	assert.Equal(t, "Page two", result[1].Text)
}

func TestNormalizeLines_EmptyInput(t *testing.T) {
	result := NormalizeLines("")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestNormalizeLines_OnlyWhitespace(t *testing.T) {
	assert.Empty(t, NormalizeLines("   \n\t\n   \r\n"))
}

func TestNormalizeLines_PreservesOrder(t *testing.T) {
	result := NormalizeLines("c\nb\na")
	require.Len(t, result, 3)
	assert.Equal(t, "c", result[0].Text)
	assert.Equal(t, "b", result[1].Text)
	assert.Equal(t, "a", result[2].Text)
	for i, l := range result {
		assert.Equal(t, i, l.Index)
	}
}

func TestNormalizeLines_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  Jane\t Doe \r\n\r\n  EXPERIENCIA \n2021 – Presente  ",
		"a\u200b\u0301b\n\n\nc\fd",
		"Tech Corp\nSenior Engineer\n2021 - Presente\nLed platform migration.",
		"émojis 🚀 and   spéciàl chàracters",
	}

	for _, input := range inputs {
		once := NormalizeLines(input)
		twice := NormalizeLines(JoinLines(once))
		assert.Equal(t, once, twice, "normalizing twice should not change %q", input)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a b\nc", NormalizeText(" a  b \n\n c "))
	assert.Equal(t, "", NormalizeText(""))
}
