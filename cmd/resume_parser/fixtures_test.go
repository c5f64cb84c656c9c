package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
Backend Engineer
jane.doe@example.com | +34 600 123 456

EXPERIENCIA
Tech Corp
Senior Engineer
2021 - Presente
Led platform migration to Golang.
StartUp Inc
Engineer
2018 - 2021
Built the MVP.

FORMACIÓN
Universidad de Sevilla
Grado en Ingeniería Informática
2010 - 2014

HABILIDADES
Docker, Kubernetes
`

const testBank = `{
  "experience": [
    {"organization": "Old Co", "title": "Intern", "date_range": "2010 - 2011"},
    {"organization": "Tech Corp", "title": "Senior Engineer", "date_range": "2021 - Present"},
    {"organization": "Mid Co", "title": "Engineer", "dates": {"start": "2015-01", "end": "2019-06"}}
  ],
  "education": [],
  "certifications": []
}`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
