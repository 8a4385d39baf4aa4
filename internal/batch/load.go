// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/svgrot/internal/ctxlog"
	"github.com/specialistvlad/svgrot/internal/fsutil"
	"github.com/specialistvlad/svgrot/internal/geom"
)

// fileSchema is the top-level structure of a batch file.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "locals"},
		{Type: string(KindRotate), LabelNames: []string{"name"}},
		{Type: string(KindPath), LabelNames: []string{"name"}},
	},
}

var rotateBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "points", Required: true},
		{Name: "angle", Required: true},
		{Name: "center"},
	},
}

var pathBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "d"}, {Name: "file"},
		{Name: "angle"}, {Name: "center"},
		{Name: "multiline"},
	},
}

// Load parses every .hcl file found under paths and returns the jobs in
// declaration order. Files within a directory are read in lexical order.
func Load(ctx context.Context, paths ...string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Batch loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered batch files.", "count", len(files))

	parser := hclparse.NewParser()
	plan := &Plan{}
	seen := make(map[string]hcl.Range)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		jobs, diags := decodeFile(hclFile.Body, file, seen)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		logger.Debug("Batch file decoded.", "file", file, "jobs", len(jobs))
		plan.Jobs = append(plan.Jobs, jobs...)
	}

	logger.Debug("Batch loading complete.", "jobs", len(plan.Jobs))
	return plan, nil
}

// decodeFile decodes the jobs of one file. seen tracks job names across
// all files of the batch.
func decodeFile(body hcl.Body, file string, seen map[string]hcl.Range) ([]*Job, hcl.Diagnostics) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	var localBlocks hcl.Blocks
	for _, block := range content.Blocks {
		if block.Type == "locals" {
			localBlocks = append(localBlocks, block)
		}
	}
	locals, localDiags := evalLocals(localBlocks)
	diags = append(diags, localDiags...)
	if localDiags.HasErrors() {
		return nil, diags
	}
	evalCtx := newEvalContext(locals)

	var jobs []*Job
	for _, block := range content.Blocks {
		if block.Type == "locals" {
			continue
		}

		name := block.Labels[0]
		if prev, exists := seen[name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate job name",
				Detail:   fmt.Sprintf("A job named %q was already declared at %s.", name, prev),
				Subject:  block.LabelRanges[0].Ptr(),
			})
			continue
		}
		seen[name] = block.DefRange

		var job *Job
		var jobDiags hcl.Diagnostics
		switch Kind(block.Type) {
		case KindRotate:
			job, jobDiags = decodeRotate(block, evalCtx)
		case KindPath:
			job, jobDiags = decodePath(block, evalCtx, filepath.Dir(file))
		}
		diags = append(diags, jobDiags...)
		if jobDiags.HasErrors() {
			continue
		}
		job.Name = name
		job.Source = file
		jobs = append(jobs, job)
	}
	return jobs, diags
}

func decodeRotate(block *hcl.Block, evalCtx *hcl.EvalContext) (*Job, hcl.Diagnostics) {
	content, diags := block.Body.Content(rotateBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}
	job := &Job{Kind: KindRotate, Rotated: true}

	pointsAttr := content.Attributes["points"]
	text, textDiags := evalString(pointsAttr.Expr, evalCtx)
	diags = append(diags, textDiags...)
	if !textDiags.HasErrors() {
		points, err := geom.ParsePoints(text)
		if err != nil {
			diags = append(diags, invalidValue(pointsAttr.Expr, err.Error()))
		}
		job.Points = points
	}

	var angleDiags hcl.Diagnostics
	job.Angle, angleDiags = evalAngle(content.Attributes["angle"].Expr, evalCtx)
	diags = append(diags, angleDiags...)

	if attr, ok := content.Attributes["center"]; ok {
		var centerDiags hcl.Diagnostics
		job.Center, centerDiags = evalCenter(attr.Expr, evalCtx)
		diags = append(diags, centerDiags...)
	}
	return job, diags
}

func decodePath(block *hcl.Block, evalCtx *hcl.EvalContext, baseDir string) (*Job, hcl.Diagnostics) {
	content, diags := block.Body.Content(pathBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}
	job := &Job{Kind: KindPath}

	dAttr, hasD := content.Attributes["d"]
	fileAttr, hasFile := content.Attributes["file"]
	switch {
	case hasD == hasFile:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid path source",
			Detail:   `Exactly one of "d" or "file" must be set.`,
			Subject:  block.DefRange.Ptr(),
		})
	case hasD:
		var dDiags hcl.Diagnostics
		job.PathData, dDiags = evalString(dAttr.Expr, evalCtx)
		diags = append(diags, dDiags...)
	default:
		name, nameDiags := evalString(fileAttr.Expr, evalCtx)
		diags = append(diags, nameDiags...)
		if !nameDiags.HasErrors() {
			if !filepath.IsAbs(name) {
				name = filepath.Join(baseDir, name)
			}
			data, err := fsutil.ReadFile(name, nil)
			if err != nil {
				diags = append(diags, invalidValue(fileAttr.Expr, fmt.Sprintf("cannot read path data: %s", err)))
			}
			job.PathData = string(data)
		}
	}

	if attr, ok := content.Attributes["angle"]; ok {
		var angleDiags hcl.Diagnostics
		job.Angle, angleDiags = evalAngle(attr.Expr, evalCtx)
		diags = append(diags, angleDiags...)
		job.Rotated = true
	}
	if attr, ok := content.Attributes["center"]; ok {
		var centerDiags hcl.Diagnostics
		job.Center, centerDiags = evalCenter(attr.Expr, evalCtx)
		diags = append(diags, centerDiags...)
	}
	if attr, ok := content.Attributes["multiline"]; ok {
		var mlDiags hcl.Diagnostics
		job.Multiline, mlDiags = evalBool(attr.Expr, evalCtx)
		diags = append(diags, mlDiags...)
	}
	return job, diags
}
