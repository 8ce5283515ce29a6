package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndfold/ndfold/backend/cpu"
	"github.com/ndfold/ndfold/tensor"
)

var keepDimsFlag bool

var reduceCmd = &cobra.Command{
	Use:   "reduce <job.yaml>",
	Short: "Run the reduction described by a YAML job file",
	Long: `Run the reduction described by a YAML job file on the CPU backend.

The job file names the operand shape, its data, the axes to collapse and
the combining operation (sum, prod, max or min). Missing data defaults to
the sequence 1..n.`,
	Args: cobra.ExactArgs(1),
	RunE: runReduceCmd,
}

func init() {
	reduceCmd.Flags().BoolVar(&keepDimsFlag, "keepdims", false,
		"keep reduced axes as size-one dimensions (overrides the job file)")
}

func runReduceCmd(cmd *cobra.Command, args []string) error {
	job, err := LoadJob(args[0])
	if err != nil {
		return err
	}

	keepDims := job.KeepDims
	if cmd.Flags().Changed("keepdims") {
		keepDims = keepDimsFlag
	}

	fn, err := combinerFor(job.Op)
	if err != nil {
		return err
	}

	backend := cpu.New()
	operand, err := job.operand(backend)
	if err != nil {
		return err
	}

	result, err := tensor.Reduce(operand, job.Init, fn, job.Axes, keepDims)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "shape: %s\n", formatShape(result.Shape()))
	fmt.Fprintf(cmd.OutOrStdout(), "data: %s\n", formatData(result.Data()))
	return nil
}

func formatShape(s tensor.Shape) string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprintf("%d", dim)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatData(data []float64) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
