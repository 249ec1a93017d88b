// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

// DocxToPDF converts a word-processor document into a PDF, one cell per
// extracted paragraph. Only textual content survives; styling, images, and
// tables are dropped.
type DocxToPDF struct{}

func (*DocxToPDF) Name() string { return "docx-to-pdf" }

func (*DocxToPDF) Convert(src, dst string) error {
	res, err := docconv.ConvertPath(src)
	if err != nil {
		return fmt.Errorf("extracting text from %s: %w", src, err)
	}

	return writeTextPDF(paragraphsFrom(res.Body), dst)
}

// paragraphsFrom splits extracted body text into paragraphs, dropping
// blank and whitespace-only lines.
func paragraphsFrom(body string) []string {
	var paragraphs []string
	for _, p := range strings.Split(body, "\n") {
		if s := strings.TrimRight(p, " \t\r"); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	return paragraphs
}
