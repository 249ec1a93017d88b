// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "sort"

// Rule keys the registry by a (source extension, target extension) pair.
type Rule struct {
	From string
	To   string
}

// Converter transforms a single source document into the target format.
// Implementations read the whole source, preserve textual content only
// (no styling, images, or layout fidelity), and write exactly one output
// file, overwriting any existing file at that path.
type Converter interface {
	// Name identifies the converter in log lines, e.g. "txt-to-pdf".
	Name() string

	// Convert reads the document at src and writes the converted
	// document to dst.
	Convert(src, dst string) error
}

// Registry maps conversion rules to converters. It is built once at
// process start and never mutated afterwards; re-registering a rule
// replaces the previous converter.
type Registry struct {
	rules map[Rule]Converter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[Rule]Converter)}
}

// Register binds the (from, to) extension pair to c. The last registration
// for a pair wins.
func (r *Registry) Register(from, to string, c Converter) {
	r.rules[Rule{From: from, To: to}] = c
}

// Lookup returns the converter for the (from, to) pair, if one is registered.
func (r *Registry) Lookup(from, to string) (Converter, bool) {
	c, ok := r.rules[Rule{From: from, To: to}]
	return c, ok
}

// Rules returns the registered pairs sorted by source then target extension.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.rules))
	for k := range r.rules {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// DefaultRegistry returns a registry with all built-in converters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".txt", ".pdf", &TextToPDF{})
	r.Register(".docx", ".pdf", &DocxToPDF{})
	r.Register(".md", ".html", NewMarkdownToHTML())
	r.Register(".html", ".pdf", &HTMLToPDF{})
	r.Register(".xlsx", ".csv", &XlsxToCSV{})
	return r
}
