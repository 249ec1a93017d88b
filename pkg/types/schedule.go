// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Unit is the recurrence interval unit.
type Unit string

const (
	UnitMinute Unit = "minute"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
)

// Valid reports whether u is one of the recognized units.
func (u Unit) Valid() bool {
	switch u {
	case UnitMinute, UnitHour, UnitDay:
		return true
	}
	return false
}

// Recurrence describes how often the scheduled task should re-run.
type Recurrence struct {
	// Every is the interval count, e.g. 5 for "every 5 minutes".
	Every int `json:"every" yaml:"every"`

	// Unit is the interval unit: minute, hour, or day.
	Unit Unit `json:"unit" yaml:"unit"`
}

// Validate rejects a non-positive interval or an unknown unit. It runs at
// configuration-parse time, before any file I/O.
func (r Recurrence) Validate() error {
	if r.Every <= 0 {
		return fmt.Errorf("recurrence interval must be positive, got %d", r.Every)
	}
	if !r.Unit.Valid() {
		return fmt.Errorf("unknown recurrence unit %q (want minute, hour, or day)", r.Unit)
	}
	return nil
}

// String renders the recurrence for log lines, e.g. "every 5 minute(s)".
func (r Recurrence) String() string {
	return fmt.Sprintf("every %d %s(s)", r.Every, r.Unit)
}

// DefaultTaskName is the well-known identifier under which the recurring
// task is registered with the OS scheduler.
const DefaultTaskName = "batchconv"

// ScheduledFlag marks an invocation as OS-triggered. A run carrying this
// flag performs the conversion batch; a manual run only (re)installs the
// schedule. The flag must appear in every registered command line or the
// scheduled ticks would re-register the task forever without ever
// converting anything.
const ScheduledFlag = "--scheduled"

// TaskDescriptor is the recurring task as submitted to the OS scheduler.
// It is never stored by batchconv; it is re-derived from the current
// configuration and re-submitted on every manual run.
type TaskDescriptor struct {
	// Name identifies the task in the scheduler store. Installation
	// replaces any prior task of the same name.
	Name string `json:"name" yaml:"name"`

	// Program is the absolute path of the batchconv binary.
	Program string `json:"program" yaml:"program"`

	// Args re-create the current configuration and always include
	// ScheduledFlag.
	Args []string `json:"args" yaml:"args"`

	// Recurrence is how often the scheduler should re-invoke Program.
	Recurrence Recurrence `json:"recurrence" yaml:"recurrence"`
}

// Validate checks the descriptor invariants before submission.
func (d TaskDescriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if d.Program == "" {
		return fmt.Errorf("task program must not be empty")
	}
	for _, a := range d.Args {
		if a == ScheduledFlag {
			return d.Recurrence.Validate()
		}
	}
	return fmt.Errorf("task args must include the %s marker", ScheduledFlag)
}

// CommandLine renders the program and arguments as a single shell command.
// Arguments containing whitespace are double-quoted.
func (d TaskDescriptor) CommandLine() string {
	parts := make([]string, 0, len(d.Args)+1)
	parts = append(parts, quoteArg(d.Program))
	for _, a := range d.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
