// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/batchconv/internal/lockfile"
	"github.com/pdiddy/batchconv/pkg/types"
)

func TestBuildDescriptor(t *testing.T) {
	scanCfg := types.ScanConfig{Dir: "/data/in", Ext: ".txt", TargetExt: ".pdf"}
	schedCfg := types.ScheduleConfig{
		Recurrence: types.Recurrence{Every: 5, Unit: types.UnitMinute},
		TaskName:   types.DefaultTaskName,
		Replace:    true,
	}

	desc := buildDescriptor("/usr/local/bin/batchconv", scanCfg, schedCfg)

	require.NoError(t, desc.Validate())
	assert.Equal(t, types.DefaultTaskName, desc.Name)
	assert.Equal(t, "/usr/local/bin/batchconv", desc.Program)
	assert.Equal(t, types.ScheduledFlag, desc.Args[len(desc.Args)-1],
		"marker must be part of the registered command line")

	line := desc.CommandLine()
	assert.Contains(t, line, "--dir /data/in")
	assert.Contains(t, line, "--ext .txt")
	assert.Contains(t, line, "--format .pdf")
	assert.Contains(t, line, "--frequency 5")
	assert.Contains(t, line, "--unit minute")
	assert.NotContains(t, line, "--task-name", "default task name is not forwarded")
	assert.NotContains(t, line, "--append", "replace mode is the default and not forwarded")
}

func TestBuildDescriptorForwardsNonDefaults(t *testing.T) {
	scanCfg := types.ScanConfig{Dir: "/d", Ext: ".md", TargetExt: ".html"}
	schedCfg := types.ScheduleConfig{
		Recurrence: types.Recurrence{Every: 1, Unit: types.UnitDay},
		TaskName:   "nightly-docs",
		Replace:    false,
	}

	desc := buildDescriptor("/bin/batchconv", scanCfg, schedCfg)
	line := desc.CommandLine()
	assert.Contains(t, line, "--task-name nightly-docs")
	assert.Contains(t, line, "--append")
	assert.True(t, strings.HasSuffix(line, types.ScheduledFlag),
		"marker comes last so forwarded flags never swallow it")
}

func TestBuildDescriptorQuotesPathsWithSpaces(t *testing.T) {
	scanCfg := types.ScanConfig{Dir: "/data/My Documents", Ext: ".txt", TargetExt: ".pdf"}
	schedCfg := types.ScheduleConfig{
		Recurrence: types.Recurrence{Every: 2, Unit: types.UnitHour},
		TaskName:   types.DefaultTaskName,
		Replace:    true,
	}

	desc := buildDescriptor("/bin/batchconv", scanCfg, schedCfg)
	assert.Contains(t, desc.CommandLine(), `"/data/My Documents"`)
}

func TestRunBatchPhaseReportsSkipsWhenLockHeld(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("world"), 0o644))

	release, ok, err := lockfile.Acquire(dir, "batchconv")
	require.NoError(t, err)
	require.True(t, ok)
	defer release()

	var out, errW bytes.Buffer
	report, err := runBatchPhase(types.ScanConfig{Dir: dir, Ext: ".txt", TargetExt: ".pdf"}, &out, &errW)
	require.NoError(t, err)

	require.Equal(t, 2, report.Total())
	for _, o := range report.Outcomes {
		assert.Equal(t, types.ConversionSkipped, o.Status)
		assert.NotEmpty(t, o.Reason)
	}
	assert.NoFileExists(t, filepath.Join(dir, "a.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "b.pdf"))
	assert.Contains(t, out.String(), "skipping this batch")
}
