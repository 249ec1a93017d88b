// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bufio"
	"fmt"
	"os"
)

// TextToPDF converts a plain text file into a PDF, one cell per input line.
type TextToPDF struct{}

func (*TextToPDF) Name() string { return "txt-to-pdf" }

// Convert reads src line by line and writes a PDF at dst. A zero-byte
// source produces a valid empty-page document.
func (*TextToPDF) Convert(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	return writeTextPDF(lines, dst)
}
