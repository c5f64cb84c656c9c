package ingestion

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageSeparator separates page dumps in extracted PDF text
const pageSeparator = "\n\n"

// ExtractPDFText returns the text layer of a PDF, one page after another,
// pages separated by a blank line. Pages without content are skipped.
func ExtractPDFText(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, &ExtractionError{Format: FormatPDF, Message: "empty document"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, &ExtractionError{Format: FormatPDF, Message: "failed to open PDF", Cause: err}
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, &ExtractionError{Format: FormatPDF, Message: "failed to read page text", Cause: err}
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, pageSeparator), numPages, nil
}
