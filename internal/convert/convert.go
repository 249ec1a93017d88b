// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements format conversion with a pluggable registry
// of single-file converters and a synchronous batch runner.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/batchconv/internal/scan"
	"github.com/pdiddy/batchconv/pkg/types"
)

// ConvertFile converts one file to targetExt, writing the result next to
// the source with the extension replaced. An existing file at the output
// path is silently overwritten. Missing converters and converter errors
// are returned as outcome values, never as errors, so the caller's batch
// keeps going.
func ConvertFile(reg *Registry, path, targetExt string, w io.Writer) types.FileOutcome {
	ext := filepath.Ext(path)
	conv, ok := reg.Lookup(ext, targetExt)
	if !ok {
		reason := fmt.Sprintf("conversion from %s to %s is not supported", ext, targetExt)
		fmt.Fprintf(w, "unsupported: %s (%s)\n", path, reason)
		return types.FileOutcome{Path: path, Status: types.ConversionUnsupported, Reason: reason}
	}

	dst := strings.TrimSuffix(path, ext) + targetExt
	if err := conv.Convert(path, dst); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
		return types.FileOutcome{Path: path, Status: types.ConversionFailed, Reason: err.Error()}
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", path, dst)
	return types.FileOutcome{Path: path, Output: dst, Status: types.ConversionDone}
}

// RunBatch scans dir for files ending in ext and converts each match to
// targetExt, one file at a time in scan order. Per-file problems are
// recorded in the report; the only error returned is a failure to list the
// directory itself.
func RunBatch(reg *Registry, dir, ext, targetExt string, w io.Writer) (types.BatchReport, error) {
	var report types.BatchReport

	paths, err := scan.ListMatching(dir, ext, w)
	if err != nil {
		return report, err
	}

	for _, p := range paths {
		report.Add(ConvertFile(reg, p, targetExt, w))
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d unsupported, %d failed (total: %d)\n",
		report.Converted(), report.Unsupported(), report.Failed(), report.Total())
	return report, nil
}
