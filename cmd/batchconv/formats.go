// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/batchconv/internal/convert"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available conversions",
	Run: func(cmd *cobra.Command, args []string) {
		reg := convert.DefaultRegistry()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available conversions:")
		for _, r := range reg.Rules() {
			fmt.Fprintf(out, "  %-6s -> %s\n", r.From, r.To)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
