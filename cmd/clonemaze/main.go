// SPDX-License-Identifier: MIT

// Package main implements the clonemaze CLI: generate a maze, reduce it to a
// minimum spanning tree and plan its exploration with cloning agents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clonemaze",
		Short: "Plan maze exploration with cloning agents",
		Long: `clonemaze generates a weighted grid maze, reduces it to a minimum spanning
tree and splits the exploration of that tree among agents that may clone
themselves at junctions for a fixed fork cost.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "", "YAML config file (env CLONEMAZE_* overrides it)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clonemaze version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "clonemaze "+version)
		},
	}
}
