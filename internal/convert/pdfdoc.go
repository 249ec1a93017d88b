// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Arial"
	pdfFontSize   = 12
	pdfLineHeight = 10
	pdfMargin     = 15
)

// writeTextPDF renders a sequence of text blocks, one multi-line cell per
// block, into a new PDF at dst. An empty block slice still produces a valid
// single-page document.
func writeTextPDF(blocks []string, dst string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfFontSize)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, b := range blocks {
		pdf.MultiCell(0, pdfLineHeight, tr(b), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(dst); err != nil {
		return fmt.Errorf("writing PDF %s: %w", dst, err)
	}
	return nil
}
