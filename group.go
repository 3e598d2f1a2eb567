package modifier

// GroupTransform is the live transform of an enclosing composite: its world
// offset and rotation. Scale is intentionally absent; composite scaling is
// baked into member geometry by the editor before the engine sees it.
type GroupTransform struct {
	X, Y     float64
	Rotation float64 // radians
}

// GroupContext describes the composite a shape belongs to. It is supplied by
// a Resolver collaborator; the engine never discovers group membership
// itself. One context is resolved per Process call and shared by every
// processor invocation of that call, so percentage settings never mix bases
// within one call.
type GroupContext struct {
	// TopLeft is the composite's top-left anchor in world coordinates.
	TopLeft Point

	// Bounds is the axis-aligned bounding box over the member shapes.
	Bounds Rect

	// Transform is the composite's live world transform.
	Transform GroupTransform

	// Members are the shapes making up the composite, in z-order.
	Members []Shape
}

// Dimensions returns the width and height of the group bounding box,
// falling back to DefaultSize for degenerate boxes.
func (g GroupContext) Dimensions() (w, h float64) {
	w, h = g.Bounds.Width(), g.Bounds.Height()
	if w <= 0 {
		w = DefaultSize
	}
	if h <= 0 {
		h = DefaultSize
	}
	return w, h
}

// Center returns the pivot used for group-relative rotation.
func (g GroupContext) Center() Point {
	return g.Bounds.Center()
}

// Resolver supplies group context for shapes that belong to a composite.
// Resolve returns false for shapes that stand alone.
type Resolver interface {
	Resolve(s Shape) (GroupContext, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(s Shape) (GroupContext, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(s Shape) (GroupContext, bool) {
	return f(s)
}

// StaticResolver resolves every shape to one fixed member list. It is a
// reference implementation for callers without a full composite system:
// build it from the group's members and pass it for group-relative
// processing.
type StaticResolver struct {
	Members   []Shape
	Transform GroupTransform
}

// Resolve returns a context over the static member list. The bounding box is
// recomputed from the members on every call so it tracks geometry changes.
func (r StaticResolver) Resolve(Shape) (GroupContext, bool) {
	if len(r.Members) == 0 {
		return GroupContext{}, false
	}
	bounds := GroupBounds(r.Members)
	return GroupContext{
		TopLeft:   bounds.Min,
		Bounds:    bounds,
		Transform: r.Transform,
		Members:   r.Members,
	}, true
}
