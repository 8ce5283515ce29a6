package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ndfold/ndfold/tensor"
)

// Job describes one reduction: the operand, the axes to collapse and the
// combining operation. It is the YAML schema of the files the reduce
// command consumes.
type Job struct {
	Shape    []int     `yaml:"shape"`
	Data     []float64 `yaml:"data,omitempty"`
	Axes     []int     `yaml:"axes,omitempty"`
	Op       string    `yaml:"op"`
	Init     float64   `yaml:"init"`
	KeepDims bool      `yaml:"keepdims,omitempty"`
}

// LoadJob reads and validates a YAML job file.
func LoadJob(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job file %s: %w", path, err)
	}
	return &job, nil
}

// Validate checks the job for structural problems before any tensor is
// built. Axis errors are left to the reducer, which reports them with
// negative-index resolution applied.
func (j *Job) Validate() error {
	if len(j.Shape) == 0 {
		return fmt.Errorf("shape is required and must have at least one dimension")
	}
	n := 1
	for i, dim := range j.Shape {
		if dim <= 0 {
			return fmt.Errorf("shape[%d] = %d, dimensions must be positive", i, dim)
		}
		n *= dim
	}
	if len(j.Data) > 0 && len(j.Data) != n {
		return fmt.Errorf("data has %d elements, shape %v needs %d", len(j.Data), j.Shape, n)
	}
	if _, err := combinerFor(j.Op); err != nil {
		return err
	}
	return nil
}

// combinerFor maps a job's op name to its combining function.
func combinerFor(op string) (tensor.ReduceFunc, error) {
	switch op {
	case "sum":
		return tensor.Sum, nil
	case "prod":
		return tensor.Prod, nil
	case "max":
		return tensor.Max, nil
	case "min":
		return tensor.Min, nil
	default:
		return nil, fmt.Errorf("unknown op %q (want sum, prod, max or min)", op)
	}
}

// operand builds the job's input tensor. Missing data defaults to the
// sequence 1..n, which makes quick shape experiments possible without
// typing every element.
func (j *Job) operand(b tensor.Backend) (*tensor.Tensor[float64, tensor.Backend], error) {
	data := j.Data
	if len(data) == 0 {
		n := 1
		for _, dim := range j.Shape {
			n *= dim
		}
		data = make([]float64, n)
		for i := range data {
			data[i] = float64(i + 1)
		}
	}
	return tensor.FromSlice(data, tensor.Shape(j.Shape), b)
}
