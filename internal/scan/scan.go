// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists directory entries by filename suffix.
package scan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrDirectoryNotFound indicates the scan target does not exist or cannot
// be listed. It is fatal to the batch run; the scheduling phase still runs.
var ErrDirectoryNotFound = errors.New("directory not found")

// ListMatching returns the paths of the regular entries directly inside dir
// whose name ends with ext. The comparison is a literal suffix match, so
// ".txt" also matches "notes.mytxt". Subdirectories are never descended
// into. An empty result is not an error; it is logged to w as an
// informational line. The order of the returned paths is whatever order the
// filesystem yields.
func ListMatching(dir, ext string, w io.Writer) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w: %v", dir, ErrDirectoryNotFound, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	if len(paths) == 0 {
		fmt.Fprintf(w, "no files with extension %s found in %s\n", ext, dir)
	}
	return paths, nil
}
