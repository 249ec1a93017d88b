// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecurrenceValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Recurrence
		wantErr string
	}{
		{name: "five minutes", rec: Recurrence{Every: 5, Unit: UnitMinute}},
		{name: "two hours", rec: Recurrence{Every: 2, Unit: UnitHour}},
		{name: "one day", rec: Recurrence{Every: 1, Unit: UnitDay}},
		{name: "zero interval", rec: Recurrence{Every: 0, Unit: UnitMinute}, wantErr: "must be positive"},
		{name: "negative interval", rec: Recurrence{Every: -3, Unit: UnitHour}, wantErr: "must be positive"},
		{name: "unknown unit", rec: Recurrence{Every: 1, Unit: "week"}, wantErr: "unknown recurrence unit"},
		{name: "empty unit", rec: Recurrence{Every: 1}, wantErr: "unknown recurrence unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTaskDescriptorValidate(t *testing.T) {
	valid := TaskDescriptor{
		Name:       DefaultTaskName,
		Program:    "/bin/batchconv",
		Args:       []string{"run", "--dir", "/in", ScheduledFlag},
		Recurrence: Recurrence{Every: 5, Unit: UnitMinute},
	}
	require.NoError(t, valid.Validate())

	noMarker := valid
	noMarker.Args = []string{"run", "--dir", "/in"}
	err := noMarker.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ScheduledFlag)

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	noProgram := valid
	noProgram.Program = ""
	assert.Error(t, noProgram.Validate())

	badRecurrence := valid
	badRecurrence.Recurrence = Recurrence{Every: 0, Unit: UnitMinute}
	assert.Error(t, badRecurrence.Validate())
}

func TestTaskDescriptorCommandLine(t *testing.T) {
	desc := TaskDescriptor{
		Name:    DefaultTaskName,
		Program: "/opt/batch conv/batchconv",
		Args:    []string{"run", "--dir", "/data/My Files", ScheduledFlag},
	}
	line := desc.CommandLine()
	assert.Equal(t, `"/opt/batch conv/batchconv" run --dir "/data/My Files" --scheduled`, line)
}

func TestBatchReportCounts(t *testing.T) {
	var r BatchReport
	r.Add(FileOutcome{Path: "a", Status: ConversionDone})
	r.Add(FileOutcome{Path: "b", Status: ConversionDone})
	r.Add(FileOutcome{Path: "c", Status: ConversionUnsupported, Reason: "no rule"})
	r.Add(FileOutcome{Path: "d", Status: ConversionFailed, Reason: "bad file"})

	assert.Equal(t, 2, r.Converted())
	assert.Equal(t, 1, r.Unsupported())
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 4, r.Total())
	assert.True(t, r.HasFailures())

	var empty BatchReport
	assert.Equal(t, 0, empty.Total())
	assert.False(t, empty.HasFailures())
}
