// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule registers batchconv as a recurring task with the host
// operating system's scheduler (Windows Task Scheduler or cron).
package schedule

import (
	"errors"
	"fmt"

	"github.com/pdiddy/batchconv/pkg/types"
)

// ErrUnsupportedPlatform indicates the running OS has no scheduler backend.
// No scheduler store is touched when this is returned.
var ErrUnsupportedPlatform = errors.New("unsupported operating system")

// Installer manages the recurring task in the host scheduler store.
// Install replaces any prior registration of the same name, so repeated
// runs are idempotent.
type Installer interface {
	// Name returns the backend name ("schtasks" or "crontab").
	Name() string

	// Install registers the task, replacing an existing one of the same
	// name.
	Install(desc types.TaskDescriptor) error

	// Remove deletes the named task. Removing an absent task is not an
	// error.
	Remove(name string) error

	// Entry returns the currently registered entry for name, or an empty
	// string when none exists.
	Entry(name string) (string, error)
}

// Options tunes backend behavior.
type Options struct {
	// AppendOnly restores the legacy crontab behavior of appending a new
	// line on every installation instead of replacing the managed one.
	// Repeated runs then accumulate duplicate entries. Ignored by the
	// Windows backend, which always replaces by task name.
	AppendOnly bool
}

// ForPlatform returns the installer for the given GOOS value. Windows uses
// schtasks; linux and darwin use the user crontab. Any other platform
// returns an error wrapping ErrUnsupportedPlatform.
func ForPlatform(goos string, opts Options) (Installer, error) {
	switch goos {
	case "windows":
		return newSchtasksInstaller(defaultExec), nil
	case "linux", "darwin":
		return newCrontabInstaller(defaultExec, !opts.AppendOnly), nil
	default:
		return nil, fmt.Errorf("no scheduler backend for %s: %w", goos, ErrUnsupportedPlatform)
	}
}
