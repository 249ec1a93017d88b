// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes up to limit recent runs, newest first, to path.
func (s *Store) ExportYAML(ctx context.Context, path string, limit int) error {
	runs, err := s.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
