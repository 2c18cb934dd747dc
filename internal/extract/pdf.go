package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts text from PDF bytes. The primary path walks pages and
// reads text row by row, which preserves reading order on multi-column
// layouts; when that yields nothing (or a page errors), the whole-document
// plain text stream is used instead.
func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	text, err := extractByRows(r)
	if err != nil || text == "" {
		return extractWholeDocument(r)
	}
	return text, nil
}

func extractByRows(r *pdf.Reader) (string, error) {
	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				buf.WriteString(word.S)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func extractWholeDocument(r *pdf.Reader) (string, error) {
	stream, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract plain text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", fmt.Errorf("read plain text: %w", err)
	}
	return buf.String(), nil
}
