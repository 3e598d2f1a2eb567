// Package modfile loads declarative modifier-stack documents.
//
// A document is an HCL file describing one shape and its ordered modifier
// blocks:
//
//	shape {
//	    type   = "rect"
//	    width  = 100
//	    height = 100
//	}
//
//	modifier "linear-array" {
//	    order    = 0
//	    count    = 3
//	    offset_x = 100
//	}
//
//	modifier "mirror" {
//	    order = 1
//	    axis  = "x"
//	}
//
// Setting attributes are HCL expressions evaluated against the variables
// width, height (the shape's effective dimensions) and pi, so values can be
// written relative to the shape: radius = width / 2.
//
// Documents feed the modstack CLI and test fixtures. They are tooling input,
// not a canvas persistence format.
package modfile

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/modifier"
)

// Document is a parsed modifier-stack document: the target shape and its
// modifier list, ready for modifier.Process.
type Document struct {
	Shape     modifier.Shape
	Modifiers []modifier.Modifier
}

// docFile is the top-level HCL structure.
type docFile struct {
	Shape     *shapeBlock      `hcl:"shape,block"`
	Modifiers []*modifierBlock `hcl:"modifier,block"`
}

type shapeBlock struct {
	ID       *string `hcl:"id,optional"`
	Type     string  `hcl:"type"`
	X        float64 `hcl:"x,optional"`
	Y        float64 `hcl:"y,optional"`
	Width    float64 `hcl:"width,optional"`
	Height   float64 `hcl:"height,optional"`
	Rotation float64 `hcl:"rotation,optional"` // degrees in documents
}

// modifierBlock captures the shared modifier attributes; the kind-specific
// settings stay in the remaining body and are decoded per label.
type modifierBlock struct {
	Kind    string   `hcl:"kind,label"`
	Order   int      `hcl:"order,optional"`
	Enabled *bool    `hcl:"enabled,optional"`
	Rest    hcl.Body `hcl:",remain"`
}

type linearBlock struct {
	Count        int     `hcl:"count,optional"`
	OffsetX      float64 `hcl:"offset_x,optional"`
	OffsetY      float64 `hcl:"offset_y,optional"`
	RotationStep float64 `hcl:"rotation_step,optional"`
	RotateAll    float64 `hcl:"rotate_all,optional"`
	ScaleStep    float64 `hcl:"scale_step,optional"`
}

type circularBlock struct {
	Count          int     `hcl:"count,optional"`
	Radius         float64 `hcl:"radius,optional"`
	StartAngle     float64 `hcl:"start_angle,optional"`
	EndAngle       float64 `hcl:"end_angle,optional"`
	CenterOffsetX  float64 `hcl:"center_offset_x,optional"`
	CenterOffsetY  float64 `hcl:"center_offset_y,optional"`
	RotateEach     float64 `hcl:"rotate_each,optional"`
	RotateAll      float64 `hcl:"rotate_all,optional"`
	AlignToTangent bool    `hcl:"align_to_tangent,optional"`
}

type gridBlock struct {
	Rows     int     `hcl:"rows,optional"`
	Columns  int     `hcl:"columns,optional"`
	SpacingX float64 `hcl:"spacing_x,optional"`
	SpacingY float64 `hcl:"spacing_y,optional"`
	OffsetX  float64 `hcl:"offset_x,optional"`
	OffsetY  float64 `hcl:"offset_y,optional"`
}

type mirrorBlock struct {
	Axis           string  `hcl:"axis,optional"`
	Offset         float64 `hcl:"offset,optional"`
	MergeThreshold float64 `hcl:"merge_threshold,optional"`
}

// Load parses and decodes a modifier-stack document from disk.
func Load(path string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}
	return decode(path, file.Body)
}

// Parse decodes a document from an in-memory buffer. The filename is used
// for diagnostics only.
func Parse(filename string, src []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}
	return decode(filename, file.Body)
}

func decode(name string, body hcl.Body) (*Document, error) {
	var raw docFile
	if diags := gohcl.DecodeBody(body, baseEvalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", name, diags)
	}
	if raw.Shape == nil {
		return nil, fmt.Errorf("decode %s: missing shape block", name)
	}

	shape := modifier.NewShape(raw.Shape.Type, raw.Shape.X, raw.Shape.Y, raw.Shape.Width, raw.Shape.Height)
	if raw.Shape.ID != nil {
		shape.ID = *raw.Shape.ID
	}
	shape.Rotation = modifier.Radians(raw.Shape.Rotation)

	ctx := settingsEvalContext(shape)
	mods := make([]modifier.Modifier, 0, len(raw.Modifiers))
	for i, b := range raw.Modifiers {
		mod, err := decodeModifier(b, ctx)
		if err != nil {
			return nil, fmt.Errorf("decode %s: modifier %d (%s): %w", name, i, b.Kind, err)
		}
		mods = append(mods, mod)
	}

	modifier.Logger().Debug("decoded modifier document",
		"name", name, "shape", shape.Type, "modifiers", len(mods))
	return &Document{Shape: shape, Modifiers: mods}, nil
}

func decodeModifier(b *modifierBlock, ctx *hcl.EvalContext) (modifier.Modifier, error) {
	var mod modifier.Modifier
	switch modifier.Type(b.Kind) {
	case modifier.TypeLinearArray:
		var lin linearBlock
		if diags := gohcl.DecodeBody(b.Rest, ctx, &lin); diags.HasErrors() {
			return mod, diags
		}
		mod = modifier.NewLinearArray(modifier.LinearArraySettings{
			Count:        lin.Count,
			OffsetX:      lin.OffsetX,
			OffsetY:      lin.OffsetY,
			RotationStep: lin.RotationStep,
			RotateAll:    lin.RotateAll,
			ScaleStep:    lin.ScaleStep,
		})
	case modifier.TypeCircularArray:
		var circ circularBlock
		if diags := gohcl.DecodeBody(b.Rest, ctx, &circ); diags.HasErrors() {
			return mod, diags
		}
		mod = modifier.NewCircularArray(modifier.CircularArraySettings{
			Count:          circ.Count,
			Radius:         circ.Radius,
			StartAngle:     circ.StartAngle,
			EndAngle:       circ.EndAngle,
			CenterOffsetX:  circ.CenterOffsetX,
			CenterOffsetY:  circ.CenterOffsetY,
			RotateEach:     circ.RotateEach,
			RotateAll:      circ.RotateAll,
			AlignToTangent: circ.AlignToTangent,
		})
	case modifier.TypeGridArray:
		var grid gridBlock
		if diags := gohcl.DecodeBody(b.Rest, ctx, &grid); diags.HasErrors() {
			return mod, diags
		}
		mod = modifier.NewGridArray(modifier.GridArraySettings{
			Rows:     grid.Rows,
			Columns:  grid.Columns,
			SpacingX: grid.SpacingX,
			SpacingY: grid.SpacingY,
			OffsetX:  grid.OffsetX,
			OffsetY:  grid.OffsetY,
		})
	case modifier.TypeMirror:
		var mir mirrorBlock
		if diags := gohcl.DecodeBody(b.Rest, ctx, &mir); diags.HasErrors() {
			return mod, diags
		}
		mod = modifier.NewMirror(modifier.MirrorSettings{
			Axis:           modifier.Axis(mir.Axis),
			Offset:         mir.Offset,
			MergeThreshold: mir.MergeThreshold,
		})
	default:
		return mod, fmt.Errorf("unknown modifier kind %q", b.Kind)
	}

	mod.Order = b.Order
	if b.Enabled != nil {
		mod.Enabled = *b.Enabled
	}
	return mod, nil
}

// baseEvalContext provides the constants available everywhere in a document.
func baseEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
	}
}

// settingsEvalContext adds the shape's effective dimensions so settings can
// be written relative to it.
func settingsEvalContext(s modifier.Shape) *hcl.EvalContext {
	w, h := s.Dimensions()
	ctx := baseEvalContext()
	ctx.Variables["width"] = cty.NumberFloatVal(w)
	ctx.Variables["height"] = cty.NumberFloatVal(h)
	return ctx
}
