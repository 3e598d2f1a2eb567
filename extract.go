package modifier

import "fmt"

// Metadata keys stamped on extracted shapes so an external materializer can
// find and replace previously created derived objects across recomputations.
const (
	MetaDerived        = "derived"
	MetaSourceShape    = "sourceShape"
	MetaSourceInstance = "sourceInstance"
	MetaArrayIndex     = "arrayIndex"
	MetaMirrored       = "mirrored"
	MetaFlippedX       = "flippedX"
	MetaFlippedY       = "flippedY"
)

// Extract maps the final instance collection to plain derived-shape values
// for a rendering or lifecycle collaborator to diff against previously
// materialized objects.
//
// Each derived shape gets a deterministic ID ("<source id>/<index>") and
// provenance tags in its metadata, so two calls with unchanged inputs
// produce identical output — a requirement for incremental create/update/
// delete reconciliation.
func (c InstanceCollection) Extract() []Shape {
	out := make([]Shape, 0, len(c.Instances))
	for _, in := range c.Instances {
		out = append(out, in.Derived(c.Source))
	}
	return out
}

// Derived materializes the instance as a plain shape value. Scale is applied
// about the visual center: dimensions grow or shrink while the center stays
// where the transform put it.
func (in Instance) Derived(source Shape) Shape {
	d := in.Shape.Clone()
	w, h := in.Shape.Dimensions()
	sw := w * in.Transform.ScaleX
	sh := h * in.Transform.ScaleY

	d.Rotation = in.Transform.Rotation
	d.Width = sw
	d.Height = sh
	tl := in.VisualCenter().Sub(Point{X: sw / 2, Y: sh / 2}.Rotate(d.Rotation))
	d.X, d.Y = tl.X, tl.Y

	d.ID = fmt.Sprintf("%s/%d", source.ID, in.Index)
	if d.Meta == nil {
		d.Meta = make(map[string]any, 4)
	}
	d.Meta[MetaDerived] = true
	d.Meta[MetaSourceShape] = in.Shape.ID
	d.Meta[MetaSourceInstance] = in.Prov.Source
	d.Meta[MetaArrayIndex] = in.Prov.ArrayIndex
	if in.Prov.Mirrored {
		d.Meta[MetaMirrored] = true
	}
	if in.Prov.FlippedX {
		d.Meta[MetaFlippedX] = true
	}
	if in.Prov.FlippedY {
		d.Meta[MetaFlippedY] = true
	}
	return d
}
