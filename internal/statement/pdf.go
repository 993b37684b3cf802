package statement

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// EncodePDF turns rendered statement lines into a single-page PDF document.
func EncodePDF(lines []string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	for _, line := range lines {
		if line == "" {
			pdf.Ln(10)
			continue
		}
		pdf.CellFormat(0, 10, line, "", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}
