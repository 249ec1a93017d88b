// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchconv/pkg/types"
)

// addScanFlags registers the flags shared by commands that run a batch.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "directory containing files to convert (non-recursive)")
	cmd.Flags().String("ext", "", "file extension to look for, e.g. .txt")
	cmd.Flags().String("format", "", "target conversion format, e.g. .pdf")
}

// addScheduleFlags registers the flags shared by commands that touch the
// OS scheduler.
func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().Int("frequency", 0, "recurrence interval count")
	cmd.Flags().String("unit", "", "recurrence interval unit: minute, hour, or day")
	cmd.Flags().String("task-name", "", "scheduler task name (default batchconv)")
	cmd.Flags().Bool("append", false, "crontab only: append a new line instead of replacing the managed one")
}

// stringSetting resolves a flag against its viper key: an explicitly set
// flag wins, the config file or environment fills the rest.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// scanConfig assembles the scan settings and rejects missing required
// fields before any file I/O happens.
func scanConfig(cmd *cobra.Command) (types.ScanConfig, error) {
	cfg := types.ScanConfig{
		Dir:       stringSetting(cmd, "dir", "scan.dir"),
		Ext:       stringSetting(cmd, "ext", "scan.ext"),
		TargetExt: stringSetting(cmd, "format", "scan.target_ext"),
	}
	if cfg.Dir == "" {
		return cfg, fmt.Errorf("--dir is required")
	}
	if cfg.Ext == "" {
		return cfg, fmt.Errorf("--ext is required")
	}
	if cfg.TargetExt == "" {
		return cfg, fmt.Errorf("--format is required")
	}
	return cfg, nil
}

// scheduleConfig assembles and validates the recurrence settings.
func scheduleConfig(cmd *cobra.Command) (types.ScheduleConfig, error) {
	cfg := types.ScheduleConfig{
		Recurrence: types.Recurrence{
			Every: intSetting(cmd, "frequency", "schedule.every"),
			Unit:  types.Unit(stringSetting(cmd, "unit", "schedule.unit")),
		},
		TaskName: stringSetting(cmd, "task-name", "schedule.task_name"),
		Replace:  viper.GetBool("schedule.replace"),
	}
	if cfg.TaskName == "" {
		cfg.TaskName = types.DefaultTaskName
	}
	if appendOnly, _ := cmd.Flags().GetBool("append"); appendOnly {
		cfg.Replace = false
	}
	if err := cfg.Recurrence.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// historyConfig reads the optional history store settings. An empty dir
// disables recording.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:     viper.GetString("history.dir"),
		MaxRuns: viper.GetInt("history.max_runs"),
	}
}
