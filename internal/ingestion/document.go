package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// Supported document formats
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
	FormatText = "text"
)

// DetectFormat classifies document bytes, falling back to the file extension
// when content sniffing is inconclusive
func DetectFormat(data []byte, name string) (string, error) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return FormatPDF, nil
	case mt.Is("text/html"):
		return FormatHTML, nil
	case strings.HasPrefix(mt.String(), "text/"):
		return FormatText, nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt", ".text", ".md":
		if utf8.Valid(data) {
			return FormatText, nil
		}
	}
	return "", &ExtractionError{Format: mt.String(), Message: "unsupported document type"}
}

// ExtractText pulls plain text out of an in-memory document
func ExtractText(ctx context.Context, data []byte, name string) (string, *Metadata, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	format, err := DetectFormat(data, name)
	if err != nil {
		return "", nil, err
	}

	meta := NewMetadata(data, name, format)
	var text string
	switch format {
	case FormatPDF:
		text, meta.Pages, err = ExtractPDFText(data)
	case FormatHTML:
		text, err = ExtractHTMLText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", nil, err
	}
	return text, meta, nil
}

// ReadDocument reads a résumé file from disk and returns its plain text
func ReadDocument(ctx context.Context, path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ExtractText(ctx, content, path)
}
