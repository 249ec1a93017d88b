// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// XlsxToCSV converts the first sheet of a spreadsheet into a CSV file.
// Formulas are exported as their cached values; other sheets are ignored.
type XlsxToCSV struct{}

func (*XlsxToCSV) Name() string { return "xlsx-to-csv" }

func (*XlsxToCSV) Convert(src, dst string) error {
	book, err := excelize.OpenFile(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%s has no sheets", src)
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("reading sheet %q of %s: %w", sheets[0], src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", dst, err)
	}
	return nil
}
