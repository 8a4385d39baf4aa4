package batch

import (
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/svgrot/internal/geom"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functions are the helpers available inside batch expressions.
var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"format": stdlib.FormatFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"upper":  stdlib.UpperFunc,
	"lower":  stdlib.LowerFunc,
}

func newEvalContext(locals map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.ObjectVal(locals)},
		Functions: functions,
	}
}

// evalLocals evaluates every attribute of the given locals blocks in source
// order. A local may refer to locals declared before it.
func evalLocals(blocks hcl.Blocks) (map[string]cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var attrs []*hcl.Attribute

	for _, block := range blocks {
		blockAttrs, attrDiags := block.Body.JustAttributes()
		diags = append(diags, attrDiags...)
		for _, attr := range blockAttrs {
			attrs = append(attrs, attr)
		}
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Range.Start.Byte < attrs[j].Range.Start.Byte
	})

	locals := make(map[string]cty.Value, len(attrs))
	for _, attr := range attrs {
		if _, exists := locals[attr.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate local value",
				Detail:   fmt.Sprintf("A local value named %q was already defined in this file.", attr.Name),
				Subject:  attr.NameRange.Ptr(),
			})
			continue
		}
		val, valDiags := attr.Expr.Value(newEvalContext(locals))
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		locals[attr.Name] = val
	}
	return locals, diags
}

// evalValue evaluates expr and converts the result to want.
func evalValue(expr hcl.Expression, evalCtx *hcl.EvalContext, want cty.Type) (cty.Value, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NilVal, append(diags, invalidValue(expr, "value must not be null"))
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, append(diags, invalidValue(expr, fmt.Sprintf("expected a %s: %s", want.FriendlyName(), err)))
	}
	return converted, diags
}

func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, hcl.Diagnostics) {
	val, diags := evalValue(expr, evalCtx, cty.String)
	if diags.HasErrors() {
		return "", diags
	}
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return "", append(diags, invalidValue(expr, err.Error()))
	}
	return s, diags
}

func evalBool(expr hcl.Expression, evalCtx *hcl.EvalContext) (bool, hcl.Diagnostics) {
	val, diags := evalValue(expr, evalCtx, cty.Bool)
	if diags.HasErrors() {
		return false, diags
	}
	var b bool
	if err := gocty.FromCtyValue(val, &b); err != nil {
		return false, append(diags, invalidValue(expr, err.Error()))
	}
	return b, diags
}

// evalAngle evaluates a finite number of degrees.
func evalAngle(expr hcl.Expression, evalCtx *hcl.EvalContext) (float64, hcl.Diagnostics) {
	val, diags := evalValue(expr, evalCtx, cty.Number)
	if diags.HasErrors() {
		return 0, diags
	}
	var f float64
	if err := gocty.FromCtyValue(val, &f); err != nil {
		return 0, append(diags, invalidValue(expr, err.Error()))
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, append(diags, invalidValue(expr, "angle must be a finite number"))
	}
	return f, diags
}

// evalCenter accepts either the textual "(cx,cy)" form or a two-element
// number list such as [cx, cy].
func evalCenter(expr hcl.Expression, evalCtx *hcl.EvalContext) (geom.Point, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return geom.Point{}, diags
	}

	if !val.IsNull() && (val.Type().IsTupleType() || val.Type().IsListType()) {
		list, err := convert.Convert(val, cty.List(cty.Number))
		if err != nil {
			return geom.Point{}, append(diags, invalidValue(expr, fmt.Sprintf("center list must contain numbers: %s", err)))
		}
		var xy []float64
		if err := gocty.FromCtyValue(list, &xy); err != nil {
			return geom.Point{}, append(diags, invalidValue(expr, err.Error()))
		}
		if len(xy) != 2 {
			return geom.Point{}, append(diags, invalidValue(expr, fmt.Sprintf("center list must have exactly 2 elements, got %d", len(xy))))
		}
		return geom.Pt(xy[0], xy[1]), diags
	}

	s, strDiags := evalString(expr, evalCtx)
	diags = append(diags, strDiags...)
	if strDiags.HasErrors() {
		return geom.Point{}, diags
	}
	center, err := geom.ParseCenter(s)
	if err != nil {
		return geom.Point{}, append(diags, invalidValue(expr, err.Error()))
	}
	return center, diags
}

func invalidValue(expr hcl.Expression, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid value",
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}
}
