// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/batchconv/pkg/types"
)

const binSchtasks = "schtasks"

// schtasksUnits maps recurrence units to schtasks /sc values.
var schtasksUnits = map[types.Unit]string{
	types.UnitMinute: "MINUTE",
	types.UnitHour:   "HOURLY",
	types.UnitDay:    "DAILY",
}

// schtasksInstaller manages a named task via the Windows Task Scheduler.
// The /f flag makes creation overwrite an existing task of the same name,
// so installation is naturally idempotent.
type schtasksInstaller struct {
	exec executor
}

func newSchtasksInstaller(exec executor) *schtasksInstaller {
	return &schtasksInstaller{exec: exec}
}

func (*schtasksInstaller) Name() string { return binSchtasks }

func (s *schtasksInstaller) Install(desc types.TaskDescriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	unit, ok := schtasksUnits[desc.Recurrence.Unit]
	if !ok {
		return fmt.Errorf("unknown recurrence unit %q", desc.Recurrence.Unit)
	}

	err := s.exec.Run(binSchtasks,
		"/create",
		"/tn", desc.Name,
		"/tr", desc.CommandLine(),
		"/sc", unit,
		"/mo", strconv.Itoa(desc.Recurrence.Every),
		"/f",
	)
	if err != nil {
		return fmt.Errorf("registering task %q: %w", desc.Name, err)
	}
	return nil
}

func (s *schtasksInstaller) Remove(name string) error {
	// Absent tasks make schtasks /delete fail; treat that as removed.
	if err := s.exec.Run(binSchtasks, "/delete", "/tn", name, "/f"); err != nil {
		if entry, qerr := s.Entry(name); qerr == nil && entry == "" {
			return nil
		}
		return fmt.Errorf("deleting task %q: %w", name, err)
	}
	return nil
}

func (s *schtasksInstaller) Entry(name string) (string, error) {
	out, err := s.exec.Output(binSchtasks, "/query", "/tn", name, "/fo", "LIST")
	if err != nil {
		// schtasks exits non-zero when the task does not exist.
		return "", nil
	}
	return out, nil
}
