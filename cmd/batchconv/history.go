// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/batchconv/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent batch runs from the history store",
	Long: `History lists recent batch runs recorded in the local SQLite store,
newest first. Recording is enabled by setting history.dir in the config
file; without it this command has nothing to show.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum number of runs to show")
	historyCmd.Flags().String("export", "", "write the runs to a YAML file instead of printing")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	histCfg := historyConfig()
	if histCfg.Dir == "" {
		return fmt.Errorf("history is not configured: set history.dir in the config file")
	}

	store, err := history.NewStore(histCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	ctx := context.Background()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := store.ExportYAML(ctx, exportPath, limit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported run history to %s.\n", exportPath)
		return nil
	}

	runs, err := store.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s (%s -> %s): %d converted, %d unsupported, %d failed\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Dir, r.Ext, r.TargetExt, r.Converted, r.Unsupported, r.Failed)
		for _, o := range r.Outcomes {
			if o.Reason != "" {
				fmt.Fprintf(out, "    %s: %s (%s)\n", o.Status, o.Path, o.Reason)
			}
		}
	}
	return nil
}
