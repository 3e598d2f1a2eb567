package modifier

// Provenance links a derived instance back to its origin, enabling
// incremental update and compound composition across modifiers.
//
// Provenance is additive: each processor copies the provenance of the input
// instance and sets only the fields it owns, so bookkeeping from earlier
// stages survives later ones.
type Provenance struct {
	// Source is the index of the instance this one was derived from in the
	// previous processing stage.
	Source int

	// ArrayIndex is the index within the most recent array expansion
	// (i for linear/circular, row*columns+col for grid).
	ArrayIndex int

	// Row and Col are set by the grid array processor.
	Row, Col int

	// Angle is the placement angle in radians set by the circular array
	// processor.
	Angle float64

	// Mirrored marks instances emitted by the mirror processor.
	// FlippedX/FlippedY record which axis was reflected; downstream
	// renderers flip geometry from these flags rather than from negative
	// scale, which not all shape kinds support.
	Mirrored bool
	FlippedX bool
	FlippedY bool
}

// Instance is one derived (or original) positioned/rotated/scaled copy
// produced during processing.
type Instance struct {
	// Shape is a snapshot of the source geometry (the source shape itself,
	// or one group member in group mode). Processors never modify it.
	Shape Shape

	// Transform is the instance's absolute placement.
	Transform Transform

	// Index equals the instance's position in the collection.
	Index int

	// Prov carries provenance metadata.
	Prov Provenance
}

// VisualCenter returns the center of the placed instance on canvas.
// Scale is applied about the center, so the center is scale-independent.
func (in Instance) VisualCenter() Point {
	return in.Transform.Position().Add(in.Shape.HalfDimensions().Rotate(in.Transform.Rotation))
}

// placedAtCenter returns the transform repositioned so the instance's visual
// center lands on c with rotation rot. This is the inverse of VisualCenter:
// the top-left anchor is the center minus the rotated half-dimension vector.
func (in Instance) placedAtCenter(c Point, rot float64) Transform {
	t := in.Transform
	t.Rotation = rot
	return t.WithPosition(c.Sub(in.Shape.HalfDimensions().Rotate(rot)))
}

// bounds returns the axis-aligned box enclosing the placed instance.
// The transform position is the rotated top-left corner, so the displayed
// corners are the unrotated corner offsets rotated about it.
func (in Instance) bounds() Rect {
	w, h := in.Shape.Dimensions()
	tl := in.Transform.Position()
	corners := []Point{
		tl,
		tl.Add(Point{X: w}),
		tl.Add(Point{X: w, Y: h}),
		tl.Add(Point{Y: h}),
	}
	result := EmptyRect()
	for _, c := range corners {
		result = result.UnionPoint(c.RotateAround(tl, in.Transform.Rotation))
	}
	return result
}

// InstanceCollection is the instance list threaded through the processor
// pipeline. It is created fresh per Process call and carries no identity
// across calls; it is purely derived data.
type InstanceCollection struct {
	// Source is the shape the stack was invoked on.
	Source Shape

	// Instances is the ordered list of derived placements.
	// Instance.Index always equals the list position.
	Instances []Instance

	// Group is the resolved group context for this call, nil in
	// single-shape mode. The same context is used by every stage.
	Group *GroupContext

	// Stages counts the processors applied so far.
	Stages int
}

// newCollection seeds the pipeline state: one identity instance per group
// member in group mode, otherwise a single identity instance wrapping the
// source shape.
func newCollection(source Shape, group *GroupContext) InstanceCollection {
	col := InstanceCollection{Source: source, Group: group}
	if group != nil && len(group.Members) > 0 {
		for i, m := range group.Members {
			col.Instances = append(col.Instances, Instance{
				Shape:     m,
				Transform: IdentityTransform(m),
				Index:     i,
				Prov:      Provenance{Source: i},
			})
		}
		return col
	}
	col.Instances = []Instance{{
		Shape:     source,
		Transform: IdentityTransform(source),
	}}
	return col
}

// reindex renumbers instances so Index matches list position.
// Every processor returns through reindex.
func (c InstanceCollection) reindex() InstanceCollection {
	for i := range c.Instances {
		c.Instances[i].Index = i
	}
	return c
}

// Bounds returns the axis-aligned bounding box of all placed instances.
func (c InstanceCollection) Bounds() Rect {
	result := EmptyRect()
	for _, in := range c.Instances {
		result = result.Union(in.bounds())
	}
	return result
}

// Len returns the number of instances.
func (c InstanceCollection) Len() int {
	return len(c.Instances)
}
