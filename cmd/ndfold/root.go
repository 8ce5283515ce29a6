package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "ndfold",
	Short: "ndfold - fold-based axis reductions over N-dimensional arrays",
	Long: `ndfold collapses axes of N-dimensional arrays by left-folding a
binary combining function over each axis.

QUICK START:
  ndfold reduce job.yaml       # Run the reduction described by a YAML job file
  ndfold version               # Show version

A job file describes the operand, the axes to reduce and the combining
operation:

  shape: [2, 3]
  data: [1, 2, 3, 4, 5, 6]
  axes: [0]
  op: sum
  init: 0
  keepdims: false

Use 'ndfold <command> --help' for detailed command information.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ndfold %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reduceCmd)
}
