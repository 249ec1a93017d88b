// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownToHTML converts a Markdown file into a standalone HTML document.
type MarkdownToHTML struct {
	md goldmark.Markdown
}

// NewMarkdownToHTML builds the converter with GitHub-flavored Markdown
// extensions enabled.
func NewMarkdownToHTML() *MarkdownToHTML {
	return &MarkdownToHTML{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (*MarkdownToHTML) Name() string { return "md-to-html" }

func (c *MarkdownToHTML) Convert(src, dst string) error {
	source, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	var body bytes.Buffer
	if err := c.md.Convert(source, &body); err != nil {
		return fmt.Errorf("rendering %s: %w", src, err)
	}

	title := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", title)
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(dst, doc.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
