// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the batchconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the batchconv CLI.
var rootCmd = &cobra.Command{
	Use:   "batchconv",
	Short: "Scheduled batch file conversion",
	Long: `batchconv scans a directory for files of one format, converts them to
another (txt/docx to PDF, Markdown to HTML, HTML to PDF, XLSX to CSV), and
registers itself with the OS scheduler (Task Scheduler or cron) so the
conversion keeps running on a recurrence you choose.

A manual 'run' installs or updates the recurring task; the OS-triggered
re-invocation carries the --scheduled marker and performs the actual batch.
Use 'convert' for a one-shot batch without touching the scheduler.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./batchconv.yaml or ~/.config/batchconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("batchconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "batchconv"))
		}
	}

	viper.SetEnvPrefix("BATCHCONV")
	viper.AutomaticEnv()

	viper.SetDefault("schedule.task_name", types.DefaultTaskName)
	viper.SetDefault("schedule.replace", true)
	viper.SetDefault("history.max_runs", 100)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
