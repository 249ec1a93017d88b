// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lockfile guards the batch phase against overlapping invocations
// with an advisory file lock. Two runs converting the same directory would
// otherwise race on the same output files.
package lockfile

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Acquire takes a non-blocking advisory lock named name inside dir. It
// returns a release function and true on success, or a nil release and
// false when another invocation already holds the lock.
func Acquire(dir, name string) (release func(), acquired bool, err error) {
	path := filepath.Join(dir, name+".lock")
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquiring lock %s: %w", path, err)
	}
	if !locked {
		return nil, false, nil
	}
	return func() { fl.Unlock() }, true, nil
}
