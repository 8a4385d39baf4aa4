// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package batch

import (
	"fmt"

	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/geom"
	"github.com/specialistvlad/svgrot/internal/svgpath"
)

// Kind identifies what a job does.
type Kind string

const (
	KindRotate Kind = "rotate"
	KindPath   Kind = "path"
)

// Job is a single, fully evaluated unit of work.
type Job struct {
	Name   string
	Kind   Kind
	Source string

	// Points is set for rotate jobs.
	Points geom.PointSet
	// PathData is set for path jobs.
	PathData  string
	Multiline bool

	Angle  float64
	Center geom.Point
	// Rotated is false for path jobs without an angle; those are only
	// reformatted.
	Rotated bool
}

// Plan is the ordered list of jobs found in all batch files.
type Plan struct {
	Jobs []*Job
}

// Execute performs the job and returns its output.
func (j *Job) Execute(precision int) (format.Result, error) {
	switch j.Kind {
	case KindRotate:
		rotated := j.Points.Rotate(j.Angle, j.Center)
		if !rotated.IsFinite() {
			return format.Result{}, geom.ErrOutOfRange
		}
		return format.Result{Name: j.Name, Points: rotated}, nil
	case KindPath:
		opts := svgpath.Options{Precision: precision, Multiline: j.Multiline}
		if j.Rotated {
			opts.Rotation = &svgpath.Rotation{Angle: j.Angle, Center: j.Center}
		}
		d, err := svgpath.Reformat(j.PathData, opts)
		if err != nil {
			return format.Result{}, err
		}
		return format.Result{Name: j.Name, Path: d}, nil
	default:
		return format.Result{}, fmt.Errorf("unknown job kind %q", j.Kind)
	}
}
