// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Run one conversion batch without touching the scheduler",
	Long: `Convert scans the directory once and converts every matching file to the
target format. The OS scheduler is left alone; use 'run' to register the
recurring task.

Files without a registered converter and files that fail to convert are
reported and skipped; the batch always processes its whole file list.`,
	RunE: runConvert,
}

func init() {
	addScanFlags(convertCmd)
	convertCmd.Flags().Bool("strict", false, "exit non-zero when any file fails to convert")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	scanCfg, err := scanConfig(cmd)
	if err != nil {
		return err
	}

	report, err := runBatchPhase(scanCfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && report.HasFailures() {
		return fmt.Errorf("%d file(s) failed to convert", report.Failed())
	}
	return nil
}
