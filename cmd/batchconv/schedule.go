// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchconv/internal/schedule"
	"github.com/pdiddy/batchconv/pkg/types"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the recurring task directly (install, remove, show)",
}

// --- install subcommand ---

var scheduleInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Register or replace the recurring conversion task",
	RunE:  runScheduleInstall,
}

func runScheduleInstall(cmd *cobra.Command, args []string) error {
	scanCfg, err := scanConfig(cmd)
	if err != nil {
		return err
	}
	schedCfg, err := scheduleConfig(cmd)
	if err != nil {
		return err
	}
	return installPhase(scanCfg, schedCfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// --- remove subcommand ---

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the recurring conversion task",
	RunE:  runScheduleRemove,
}

func runScheduleRemove(cmd *cobra.Command, args []string) error {
	inst, err := platformInstaller(cmd)
	if err != nil {
		return err
	}
	name := taskNameSetting(cmd)
	if err := inst.Remove(name); err != nil {
		return fmt.Errorf("removing task %q: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed task %q via %s.\n", name, inst.Name())
	return nil
}

// --- show subcommand ---

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the currently registered task, if any",
	RunE:  runScheduleShow,
}

func runScheduleShow(cmd *cobra.Command, args []string) error {
	inst, err := platformInstaller(cmd)
	if err != nil {
		return err
	}
	name := taskNameSetting(cmd)
	entry, err := inst.Entry(name)
	if err != nil {
		return err
	}
	if entry == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No task %q registered via %s.\n", name, inst.Name())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), entry)
	return nil
}

// --- shared helpers ---

func platformInstaller(cmd *cobra.Command) (schedule.Installer, error) {
	appendOnly, _ := cmd.Flags().GetBool("append")
	if !appendOnly {
		appendOnly = !viper.GetBool("schedule.replace")
	}
	return schedule.ForPlatform(runtime.GOOS, schedule.Options{AppendOnly: appendOnly})
}

func taskNameSetting(cmd *cobra.Command) string {
	name := stringSetting(cmd, "task-name", "schedule.task_name")
	if name == "" {
		name = types.DefaultTaskName
	}
	return name
}

func init() {
	addScanFlags(scheduleInstallCmd)
	addScheduleFlags(scheduleInstallCmd)

	scheduleRemoveCmd.Flags().String("task-name", "", "scheduler task name (default batchconv)")
	scheduleRemoveCmd.Flags().Bool("append", false, "crontab only: operate in append-only mode")

	scheduleShowCmd.Flags().String("task-name", "", "scheduler task name (default batchconv)")
	scheduleShowCmd.Flags().Bool("append", false, "crontab only: operate in append-only mode")

	scheduleCmd.AddCommand(scheduleInstallCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	rootCmd.AddCommand(scheduleCmd)
}
