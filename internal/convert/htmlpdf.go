// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// HTMLToPDF converts an HTML file into a PDF by rendering it through the
// wkhtmltopdf binary, which must be present on PATH.
type HTMLToPDF struct{}

func (*HTMLToPDF) Name() string { return "html-to-pdf" }

func (*HTMLToPDF) Convert(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("locating wkhtmltopdf: %w", err)
	}
	gen.AddPage(wkhtmltopdf.NewPageReader(f))

	if err := gen.Create(); err != nil {
		return fmt.Errorf("rendering %s: %w", src, err)
	}
	if err := gen.WriteFile(dst); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
