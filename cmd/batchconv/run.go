// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchconv/internal/convert"
	"github.com/pdiddy/batchconv/internal/history"
	"github.com/pdiddy/batchconv/internal/lockfile"
	"github.com/pdiddy/batchconv/internal/scan"
	"github.com/pdiddy/batchconv/internal/schedule"
	"github.com/pdiddy/batchconv/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Install the recurring conversion task (and run the batch when OS-triggered)",
	Long: `Run is the scheduled-task entry point. A manual invocation registers or
updates the recurring task with the OS scheduler and converts nothing; the
re-invocation the scheduler performs carries the hidden --scheduled marker
and runs the conversion batch before refreshing the registration.

Per-file conversion problems are logged and recorded in the batch summary
without affecting the exit code. A missing scan directory or a scheduler
failure exits non-zero.`,
	RunE: runRun,
}

func init() {
	addScanFlags(runCmd)
	addScheduleFlags(runCmd)
	runCmd.Flags().Bool("scheduled", false, "set by the OS scheduler on re-invocation")
	if f := runCmd.Flags().Lookup("scheduled"); f != nil {
		f.Hidden = true
	}

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	scanCfg, err := scanConfig(cmd)
	if err != nil {
		return err
	}
	schedCfg, err := scheduleConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errW := cmd.ErrOrStderr()
	scheduled, _ := cmd.Flags().GetBool("scheduled")

	// Phase 1: the conversion batch, only on OS-triggered runs.
	var batchErr error
	if scheduled {
		_, batchErr = runBatchPhase(scanCfg, out, errW)
		if batchErr != nil {
			fmt.Fprintf(errW, "batch run failed: %v\n", batchErr)
		}
	}

	// Phase 2: (re)register the recurring task. This happens on every
	// run and never rolls back a batch that already completed.
	if err := installPhase(scanCfg, schedCfg, out, errW); err != nil {
		if batchErr != nil {
			return fmt.Errorf("%w (batch also failed: %v)", err, batchErr)
		}
		return err
	}
	return batchErr
}

// runBatchPhase scans and converts, guarded by the advisory lock, and
// records the report in the history store when one is configured.
func runBatchPhase(scanCfg types.ScanConfig, out, errW io.Writer) (types.BatchReport, error) {
	var report types.BatchReport

	if !viper.GetBool("no_lock") {
		lockDir := viper.GetString("lock_dir")
		if lockDir == "" {
			lockDir = scanCfg.Dir
		}
		release, ok, err := lockfile.Acquire(lockDir, "batchconv")
		if err != nil {
			fmt.Fprintf(errW, "advisory lock unavailable, continuing without it: %v\n", err)
		} else if !ok {
			// Report what the skipped batch left behind instead of
			// pretending nothing was there.
			fmt.Fprintln(out, "another batchconv invocation is running; skipping this batch")
			paths, listErr := scan.ListMatching(scanCfg.Dir, scanCfg.Ext, out)
			if listErr != nil {
				return report, listErr
			}
			for _, p := range paths {
				report.Add(types.FileOutcome{
					Path:   p,
					Status: types.ConversionSkipped,
					Reason: "another invocation holds the batch lock",
				})
			}
			recordRun(time.Now(), scanCfg, report, errW)
			return report, nil
		} else {
			defer release()
		}
	}

	started := time.Now()
	report, err := convert.RunBatch(convert.DefaultRegistry(), scanCfg.Dir, scanCfg.Ext, scanCfg.TargetExt, out)
	if err != nil {
		return report, err
	}

	recordRun(started, scanCfg, report, errW)
	return report, nil
}

// recordRun persists the report when history is configured. Store failures
// are logged and swallowed; history is observational only.
func recordRun(started time.Time, scanCfg types.ScanConfig, report types.BatchReport, errW io.Writer) {
	histCfg := historyConfig()
	if histCfg.Dir == "" {
		return
	}

	store, err := history.NewStore(histCfg)
	if err != nil {
		fmt.Fprintf(errW, "history store unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(context.Background(), started, scanCfg, report); err != nil {
		fmt.Fprintf(errW, "recording run history: %v\n", err)
	}
}

// installPhase builds the task descriptor from the current configuration
// and submits it to the platform scheduler.
func installPhase(scanCfg types.ScanConfig, schedCfg types.ScheduleConfig, out, errW io.Writer) error {
	program, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving program path: %w", err)
	}

	desc := buildDescriptor(program, scanCfg, schedCfg)

	inst, err := schedule.ForPlatform(runtime.GOOS, schedule.Options{AppendOnly: !schedCfg.Replace})
	if err != nil {
		fmt.Fprintf(errW, "cannot schedule on this platform: %v\n", err)
		return err
	}
	if err := inst.Install(desc); err != nil {
		fmt.Fprintf(errW, "failed to schedule task via %s: %v\n", inst.Name(), err)
		return err
	}

	fmt.Fprintf(out, "Scheduled task %q via %s, %s.\n", desc.Name, inst.Name(), desc.Recurrence)
	return nil
}

// buildDescriptor re-creates the current configuration as the command line
// the scheduler will invoke. The scheduled marker is always included.
func buildDescriptor(program string, scanCfg types.ScanConfig, schedCfg types.ScheduleConfig) types.TaskDescriptor {
	args := []string{
		"run",
		"--dir", scanCfg.Dir,
		"--ext", scanCfg.Ext,
		"--format", scanCfg.TargetExt,
		"--frequency", strconv.Itoa(schedCfg.Every),
		"--unit", string(schedCfg.Unit),
	}
	if schedCfg.TaskName != types.DefaultTaskName {
		args = append(args, "--task-name", schedCfg.TaskName)
	}
	if !schedCfg.Replace {
		args = append(args, "--append")
	}
	args = append(args, types.ScheduledFlag)

	return types.TaskDescriptor{
		Name:       schedCfg.TaskName,
		Program:    program,
		Args:       args,
		Recurrence: schedCfg.Recurrence,
	}
}
