// Package schemas embeds the JSON Schemas describing the parser's output
// and the experience bank file format.
package schemas

import "embed"

// Schema file names
const (
	ResumeSchema = "resume.schema.json"
	BankSchema   = "bank.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of an embedded schema
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists the embedded schema files
func Names() []string {
	return []string{ResumeSchema, BankSchema}
}
