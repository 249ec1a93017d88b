// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScanConfig holds settings for the directory scan and conversion phase.
type ScanConfig struct {
	// Dir is the directory to scan. Scanning is non-recursive.
	Dir string `json:"dir" yaml:"dir"`

	// Ext is the suffix filter for input files, e.g. ".txt". The match is
	// a literal suffix comparison, not a glob.
	Ext string `json:"ext" yaml:"ext"`

	// TargetExt is the desired output extension, e.g. ".pdf".
	TargetExt string `json:"target_ext" yaml:"target_ext"`
}

// ScheduleConfig holds settings for the recurring-task registration phase.
type ScheduleConfig struct {
	// Recurrence is the (interval, unit) pair submitted to the scheduler.
	Recurrence `yaml:",inline"`

	// TaskName overrides the well-known task identifier (default
	// DefaultTaskName). Two installations with different names coexist.
	TaskName string `json:"task_name" yaml:"task_name"`

	// Replace controls crontab handling on POSIX. When true (the default)
	// installation removes previously managed lines before appending, so
	// repeated runs keep exactly one entry per task name. When false the
	// backend appends unconditionally and duplicate lines accumulate.
	Replace bool `json:"replace" yaml:"replace"`
}

// HistoryConfig holds settings for the batch run history store.
type HistoryConfig struct {
	// Dir is the directory containing the history database. Empty
	// disables history recording.
	Dir string `json:"dir" yaml:"dir"`

	// MaxRuns bounds how many runs are retained (default 100). Older runs
	// are pruned after each recording.
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// Config groups all batchconv settings.
type Config struct {
	Scan     ScanConfig     `json:"scan" yaml:"scan"`
	Schedule ScheduleConfig `json:"schedule" yaml:"schedule"`
	History  HistoryConfig  `json:"history" yaml:"history"`

	// LockDir is where the advisory lock file lives. Empty falls back to
	// the scan directory.
	LockDir string `json:"lock_dir" yaml:"lock_dir"`

	// NoLock disables the advisory lock that prevents overlapping batch
	// runs from racing on the same output files.
	NoLock bool `json:"no_lock" yaml:"no_lock"`
}
